package raster

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/nwidger/jpegcodec"
)

// rgbImage adapts a jpegcodec.Image to image.Image so the standard library
// and x/image encoders can consume it directly, without an intermediate
// copy into image.RGBA.
type rgbImage struct{ img *jpegcodec.Image }

func (a rgbImage) ColorModel() color.Model { return color.RGBAModel }
func (a rgbImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.img.Width, a.img.Height)
}
func (a rgbImage) At(x, y int) color.Color {
	r, g, b := a.img.At(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Save writes img to path, choosing the encoder from path's extension.
// PNG and JPEG are written with the standard library (the canonical,
// zero-cost encoders for those two formats); BMP and TIFF go through
// golang.org/x/image, the same split SPEC_FULL.md §11 draws for the
// loader. jpegQuality is only consulted when path names a .jpg/.jpeg
// output (cmd/jpegtool's decode subcommand passes 90).
func Save(path string, img *jpegcodec.Image, jpegQuality int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "raster: create %s", path)
	}
	defer f.Close()

	src := rgbImage{img: img}

	switch strings.ToLower(ext(path)) {
	case "png":
		err = png.Encode(f, src)
	case "jpg", "jpeg":
		err = jpeg.Encode(f, src, &jpeg.Options{Quality: jpegQuality})
	case "bmp":
		err = bmp.Encode(f, src)
	case "tif", "tiff":
		err = tiff.Encode(f, src, nil)
	default:
		return errUnsupportedFormat(path)
	}
	if err != nil {
		return errors.Wrapf(err, "raster: encode %s", path)
	}
	return nil
}
