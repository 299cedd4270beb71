package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nwidger/jpegcodec"
	"github.com/nwidger/jpegcodec/internal/raster"
)

// newEncodeCmd wires jpegtool encode: read one raster image, encode it at
// the given quality into this codec's envelope, write the result. Grounded
// on the teacher's cmd/progjpeg/main.go single-file in/out shape, minus
// progressive scan selection and the HTTP serving flag (§1 Non-goals,
// DESIGN.md's dropped-teacher-code entry for cmd/progjpeg/main.go).
func newEncodeCmd() *cobra.Command {
	var in, out string
	var quality int

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a raster image into a jpegcodec envelope",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" || out == "" {
				return errors.New("encode: both --in and --out are required")
			}

			logger, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			img, err := raster.Load(in)
			if err != nil {
				return err
			}

			enc, err := jpegcodec.NewEncoder(jpegcodec.Options{Quality: quality, Logger: logger})
			if err != nil {
				return errors.Wrap(err, "encode: build encoder")
			}

			data, err := enc.Encode(img)
			if err != nil {
				return errors.Wrap(err, "encode: encode image")
			}

			if err := os.WriteFile(out, data, 0o644); err != nil {
				return errors.Wrapf(err, "encode: write %s", out)
			}

			logger.Info("encoded",
				zap.String("in", in), zap.String("out", out),
				zap.Int("quality", quality), zap.Int("bytes", len(data)))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input raster image path (png/jpeg/bmp/tiff)")
	cmd.Flags().StringVar(&out, "out", "", "output envelope path")
	cmd.Flags().IntVar(&quality, "quality", 75, "encode quality, 1-100")
	return cmd
}

// newDecodeCmd wires jpegtool decode: the inverse of encode, writing a
// raster image back out (format chosen from --out's extension via
// internal/raster).
func newDecodeCmd() *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a jpegcodec envelope back into a raster image",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" || out == "" {
				return errors.New("decode: both --in and --out are required")
			}

			logger, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			data, err := os.ReadFile(in)
			if err != nil {
				return errors.Wrapf(err, "decode: read %s", in)
			}

			img, err := jpegcodec.Decode(data)
			if err != nil {
				return errors.Wrap(err, "decode: decode envelope")
			}

			if err := raster.Save(out, img, 90); err != nil {
				return err
			}

			logger.Info("decoded", zap.String("in", in), zap.String("out", out))
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input envelope path")
	cmd.Flags().StringVar(&out, "out", "", "output raster image path (png/jpeg/bmp/tiff)")
	return cmd
}
