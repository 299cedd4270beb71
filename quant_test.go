package jpegcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleQuantTableRejectsOutOfRange(t *testing.T) {
	_, err := ScaleQuantTable(&BaseQuantLuma, 0)
	require.Error(t, err)
	_, err = ScaleQuantTable(&BaseQuantLuma, 101)
	require.Error(t, err)
}

func TestScaleQuantTableQuality100ClipsToOne(t *testing.T) {
	// scale = 200-2*100 = 0, so every entry rounds to (0+50)/100 == 0, clipped to 1.
	q, err := ScaleQuantTable(&BaseQuantLuma, 100)
	require.NoError(t, err)
	for _, v := range q {
		assert.EqualValues(t, 1, v)
	}
}

func TestScaleQuantTableClipsAtUpperBound(t *testing.T) {
	// scale = 5000/1 = 5000, guaranteed to overflow every entry past 255.
	q, err := ScaleQuantTable(&BaseQuantLuma, 1)
	require.NoError(t, err)
	for _, v := range q {
		assert.EqualValues(t, 255, v)
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.EqualValues(t, 1, roundHalfAwayFromZero(0.5))
	assert.EqualValues(t, -1, roundHalfAwayFromZero(-0.5))
	assert.EqualValues(t, 2, roundHalfAwayFromZero(1.5))
	assert.EqualValues(t, -2, roundHalfAwayFromZero(-1.5))
	assert.EqualValues(t, 0, roundHalfAwayFromZero(0.49))
}

func TestQuantizeDequantizeRoundTrip(t *testing.T) {
	q, err := ScaleQuantTable(&BaseQuantLuma, 50)
	require.NoError(t, err)

	var coeffs [64]float64
	for i := range coeffs {
		coeffs[i] = float64(i) * float64(q[i]) // exact multiples so quantize/dequantize is lossless
	}
	blk := Quantize(&coeffs, q)
	back := Dequantize(&blk, q)
	for i := range coeffs {
		assert.InDelta(t, coeffs[i], back[i], 1e-9)
	}
}
