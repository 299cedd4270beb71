package jpegcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboardImage(w, h int) *Image {
	img := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/4+y/4)%2 == 0 {
				img.Set(x, y, 220, 40, 40)
			} else {
				img.Set(x, y, 30, 30, 220)
			}
		}
	}
	return img
}

func TestNewEncoderRejectsBadQuality(t *testing.T) {
	_, err := NewEncoder(Options{Quality: 0})
	require.Error(t, err)
	_, err = NewEncoder(Options{Quality: 101})
	require.Error(t, err)
}

func TestEncodeRejectsNonPositiveDimensions(t *testing.T) {
	enc, err := NewEncoder(Options{Quality: 50})
	require.NoError(t, err)
	_, err = enc.Encode(&Image{Width: 0, Height: 4, Pix: make([]uint8, 0)})
	require.Error(t, err)
}

func TestEncodeRejectsMismatchedPixelBuffer(t *testing.T) {
	enc, err := NewEncoder(Options{Quality: 50})
	require.NoError(t, err)
	_, err = enc.Encode(&Image{Width: 4, Height: 4, Pix: make([]uint8, 3)})
	require.Error(t, err)
}

func TestEncodeProducesEnvelopeWithExpectedHeader(t *testing.T) {
	img := checkerboardImage(16, 16)
	data, err := Encode(img, 80)
	require.NoError(t, err)

	width, height, quality, payload, err := unpackContainer(data)
	require.NoError(t, err)
	assert.Equal(t, 16, width)
	assert.Equal(t, 16, height)
	assert.Equal(t, 80, quality)
	assert.NotEmpty(t, payload)
}

func TestEncodeNonMCUAlignedDimensions(t *testing.T) {
	img := checkerboardImage(18, 10)
	data, err := Encode(img, 60)
	require.NoError(t, err)
	width, height, _, _, err := unpackContainer(data)
	require.NoError(t, err)
	assert.Equal(t, 18, width)
	assert.Equal(t, 10, height)
}

func TestEncoderReusableAcrossImages(t *testing.T) {
	enc, err := NewEncoder(Options{Quality: 70})
	require.NoError(t, err)

	img1 := checkerboardImage(8, 8)
	img2 := checkerboardImage(16, 8)

	_, err = enc.Encode(img1)
	require.NoError(t, err)
	_, err = enc.Encode(img2)
	require.NoError(t, err)
}
