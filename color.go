package jpegcodec

// clamp8 clamps a float64 to [0,255] and rounds to the nearest integer,
// per the RGB<->YCbCr conversions of §4.7.
func clamp8(v float64) uint8 {
	r := int(v + 0.5)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// RGBToYCbCr converts one RGB pixel to YCbCr using the BT.601 full-range
// JPEG-convention coefficients of §4.7. Grounded on the teacher's
// toYCbCr/rgbaToYCbCr, which delegate to image/color.RGBToYCbCr; this core
// must not import image/color (§6: the core is addressed purely by
// in-memory interfaces of its own design), so the coefficients are
// reimplemented directly here.
func RGBToYCbCr(r, g, b uint8) (y, cb, cr uint8) {
	rf, gf, bf := float64(r), float64(g), float64(b)
	y = clamp8(0.299*rf + 0.587*gf + 0.114*bf)
	cb = clamp8(-0.168736*rf - 0.331264*gf + 0.5*bf + 128)
	cr = clamp8(0.5*rf - 0.418688*gf - 0.081312*bf + 128)
	return
}

// YCbCrToRGB reverses RGBToYCbCr per §4.7.
func YCbCrToRGB(y, cb, cr uint8) (r, g, b uint8) {
	yf := float64(y)
	cbf := float64(cb) - 128
	crf := float64(cr) - 128
	r = clamp8(yf + 1.402*crf)
	g = clamp8(yf - 0.344136*cbf - 0.714136*crf)
	b = clamp8(yf + 1.772*cbf)
	return
}

// downsample420 averages each 2x2 block of src into a chroma plane at half
// resolution (rounded up) in each dimension, rounding each average to the
// nearest integer; truncated blocks at odd edges average over the
// available 1x2, 2x1 or 1x1 pixels, per §4.7.
//
// Grounded on the teacher's scale() in writer.go, which performs the
// inverse (chroma-to-luma upsample-by-replication across a 2x2 block using
// a (sum+2)>>2 average in the *encoder's* downsample path for subsampled
// *source* chroma) — generalized here to handle ragged edges, since the
// teacher always operates on already block-aligned 16x16 regions.
func downsample420(src *Plane) *Plane {
	dw := (src.Width + 1) / 2
	dh := (src.Height + 1) / 2
	dst := NewPlane(dw, dh)
	for dy := 0; dy < dh; dy++ {
		sy0 := dy * 2
		sy1 := sy0 + 1
		rows := 1
		if sy1 < src.Height {
			rows = 2
		}
		for dx := 0; dx < dw; dx++ {
			sx0 := dx * 2
			sx1 := sx0 + 1
			cols := 1
			if sx1 < src.Width {
				cols = 2
			}
			sum := 0
			for j := 0; j < rows; j++ {
				for i := 0; i < cols; i++ {
					sum += int(src.Pix[(sy0+j)*src.Width+(sx0+i)])
				}
			}
			n := rows * cols
			dst.Pix[dy*dw+dx] = uint8((sum + n/2) / n)
		}
	}
	return dst
}

// upsample420 replicates each chroma pixel into a 2x2 block (nearest
// neighbor) and crops the result to (width, height), per §4.7.
func upsample420(src *Plane, width, height int) *Plane {
	dst := NewPlane(width, height)
	for y := 0; y < height; y++ {
		sy := y / 2
		for x := 0; x < width; x++ {
			sx := x / 2
			dst.Pix[y*width+x] = src.at(sx, sy)
		}
	}
	return dst
}

// BuildYCbCrPlanes converts an RGB image to planar 4:2:0 YCbCr, per §3 and
// §4.7. The Y plane (and therefore the derived chroma planes) is padded up
// to a multiple of 16 before subsampling, so that every plane is already
// block-aligned for 8x8 splitting (§3: "Padded internally to multiples of
// 8 on each channel (and to multiples of 16 on Y before subsampling...)").
// Padding replicates edge pixels (the source coordinates are clamped to
// the image), not zero-fill: the color planes are sourced from the image
// directly, and zero-filling a padded RGB region would bleed black into
// the chroma average at the image edge. The subsequent 8x8 block split
// (§4.7) zero-pads, but the planes built here are already multiples of 16
// (luma) and 8 (chroma), so it adds no padding of its own.
func BuildYCbCrPlanes(img *Image) *YCbCrPlanes {
	wy := padUp(img.Width, 16)
	hy := padUp(img.Height, 16)
	y := NewPlane(wy, hy)
	fullCb := NewPlane(wy, hy)
	fullCr := NewPlane(wy, hy)
	for row := 0; row < hy; row++ {
		sy := row
		if sy >= img.Height {
			sy = img.Height - 1
		}
		for col := 0; col < wy; col++ {
			sx := col
			if sx >= img.Width {
				sx = img.Width - 1
			}
			r, g, b := img.At(sx, sy)
			yy, cb, cr := RGBToYCbCr(r, g, b)
			y.Pix[row*wy+col] = yy
			fullCb.Pix[row*wy+col] = cb
			fullCr.Pix[row*wy+col] = cr
		}
	}
	return &YCbCrPlanes{
		Y:      y,
		Cb:     downsample420(fullCb),
		Cr:     downsample420(fullCr),
		Width:  img.Width,
		Height: img.Height,
	}
}

// ReassembleImage reverses BuildYCbCrPlanes: it upsamples the chroma
// planes back to luma resolution, converts each pixel to RGB, and crops to
// the logical (Width, Height) carried on planes, per §4.7.
func ReassembleImage(planes *YCbCrPlanes) *Image {
	wy, hy := planes.Y.Width, planes.Y.Height
	cb := upsample420(planes.Cb, wy, hy)
	cr := upsample420(planes.Cr, wy, hy)
	img := NewImage(planes.Width, planes.Height)
	for row := 0; row < planes.Height; row++ {
		for col := 0; col < planes.Width; col++ {
			yy := planes.Y.Pix[row*wy+col]
			cbv := cb.Pix[row*wy+col]
			crv := cr.Pix[row*wy+col]
			r, g, b := YCbCrToRGB(yy, cbv, crv)
			img.Set(col, row, r, g, b)
		}
	}
	return img
}
