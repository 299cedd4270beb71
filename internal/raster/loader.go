// Package raster loads and saves the plain RGB rasters jpegcodec's core
// operates on, translating to/from Go's image.Image and the wire formats a
// batch tool encounters on disk. It is a collaborator per §6 of the
// specification this codec implements, not part of the core: the core
// package never imports it.
package raster

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/nwidger/jpegcodec"
)

// Load decodes the image file at path into a jpegcodec.Image, converting
// whatever color model the source format produced into 8-bit interleaved
// RGB. Grounded on the teacher's cmd/progjpeg/main.go ("os.Open" +
// "image.Decode" with blank-imported format registrations), extended with
// golang.org/x/image's bmp/tiff decoders so the loader isn't limited to the
// two formats the standard library covers.
func Load(path string) (*jpegcodec.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "raster: open %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "raster: decode %s", path)
	}

	return fromImage(img), nil
}

// fromImage converts any image.Image into a jpegcodec.Image by sampling
// its color.Color at every pixel and quantizing to 8-bit RGB, dropping
// alpha (§1/§6: this codec is RGB-only, no alpha channel).
func fromImage(src image.Image) *jpegcodec.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := jpegcodec.NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit-alpha-premultiplied components; shift
			// down to 8-bit since this codec works in 8-bit RGB.
			out.Set(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return out
}

// LoadReader is Load's variant for an already-open stream, for callers that
// don't have (or don't want to name) a path — e.g. piping stdin into the
// CLI.
func LoadReader(r io.Reader) (*jpegcodec.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "raster: decode stream")
	}
	return fromImage(img), nil
}

// ext returns the extension of path without its leading dot, case
// preserved, used to pick a saver format in saver.go (Save lowercases it).
func ext(path string) string {
	e := filepath.Ext(path)
	if len(e) > 0 {
		e = e[1:]
	}
	return e
}

// errUnsupportedFormat reports a save (or, theoretically, load) request for
// a file extension this package doesn't know how to handle.
func errUnsupportedFormat(path string) error {
	return fmt.Errorf("raster: unsupported format for %q (want .png, .jpg/.jpeg, .bmp or .tif/.tiff)", path)
}
