package jpegcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToYCbCrGray(t *testing.T) {
	y, cb, cr := RGBToYCbCr(128, 128, 128)
	assert.InDelta(t, 128, int(y), 1)
	assert.InDelta(t, 128, int(cb), 1)
	assert.InDelta(t, 128, int(cr), 1)
}

func TestColorRoundTripWithinRoundingTolerance(t *testing.T) {
	for _, rgb := range [][3]uint8{{0, 0, 0}, {255, 255, 255}, {200, 50, 10}, {12, 240, 77}} {
		y, cb, cr := RGBToYCbCr(rgb[0], rgb[1], rgb[2])
		r, g, b := YCbCrToRGB(y, cb, cr)
		assert.InDeltaf(t, int(rgb[0]), int(r), 2, "r for %v", rgb)
		assert.InDeltaf(t, int(rgb[1]), int(g), 2, "g for %v", rgb)
		assert.InDeltaf(t, int(rgb[2]), int(b), 2, "b for %v", rgb)
	}
}

func TestDownsample420AveragesFullBlock(t *testing.T) {
	p := NewPlane(2, 2)
	p.Pix = []uint8{10, 20, 30, 40}
	d := downsample420(p)
	assert.Equal(t, 1, d.Width)
	assert.Equal(t, 1, d.Height)
	assert.EqualValues(t, 25, d.Pix[0]) // (10+20+30+40)/4
}

func TestDownsample420RaggedEdge(t *testing.T) {
	p := NewPlane(3, 1)
	p.Pix = []uint8{10, 20, 30}
	d := downsample420(p)
	assert.Equal(t, 2, d.Width)
	assert.EqualValues(t, 15, d.Pix[0]) // avg(10,20)
	assert.EqualValues(t, 30, d.Pix[1]) // single pixel, no partner
}

func TestUpsample420ReplicatesNearestNeighbor(t *testing.T) {
	p := NewPlane(1, 1)
	p.Pix = []uint8{42}
	up := upsample420(p, 2, 2)
	for _, v := range up.Pix {
		assert.EqualValues(t, 42, v)
	}
}

func TestBuildAndReassembleYCbCrPlanesRoundTrip(t *testing.T) {
	img := NewImage(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			img.Set(x, y, uint8(x*10), uint8(y*20), uint8(100))
		}
	}
	planes := BuildYCbCrPlanes(img)
	assert.Equal(t, 5, planes.Width)
	assert.Equal(t, 3, planes.Height)
	// Y is padded to a multiple of 16.
	assert.Equal(t, 16, planes.Y.Width)
	assert.Equal(t, 16, planes.Y.Height)

	out := ReassembleImage(planes)
	assert.Equal(t, img.Width, out.Width)
	assert.Equal(t, img.Height, out.Height)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			wr, wg, wb := img.At(x, y)
			gr, gg, gb := out.At(x, y)
			assert.InDeltaf(t, int(wr), int(gr), 3, "r at (%d,%d)", x, y)
			assert.InDeltaf(t, int(wg), int(gg), 3, "g at (%d,%d)", x, y)
			assert.InDeltaf(t, int(wb), int(gb), 3, "b at (%d,%d)", x, y)
		}
	}
}
