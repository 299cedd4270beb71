package jpegcodec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func almostEqual(t *testing.T, want, got float64, tol float64) {
	t.Helper()
	assert.InDeltaf(t, want, got, tol, "want %v got %v", want, got)
}

// TestForwardDCTConstantBlockIsDCOnly checks that a flat (all-zero,
// level-shifted) block produces a DC coefficient of 0 and every AC
// coefficient at (or within rounding of) zero, per the definition in §4.5.
func TestForwardDCTConstantBlockIsDCOnly(t *testing.T) {
	var b Block // already level-shifted zero block
	coeffs := ForwardDCT(&b)
	for i, c := range coeffs {
		almostEqual(t, 0, c, 1e-9)
		_ = i
	}
}

// TestForwardDCTConstantOffset verifies the known closed form for a
// constant-valued block: S[0,0] = 8*value, all other coefficients zero.
func TestForwardDCTConstantOffset(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = 10 // level-shifted constant
	}
	coeffs := ForwardDCT(&b)
	almostEqual(t, 80, coeffs[0], 1e-6)
	for i := 1; i < 64; i++ {
		almostEqual(t, 0, coeffs[i], 1e-6)
	}
}

// TestDCTRoundTrip verifies ForwardDCT/InverseDCT compose to the identity
// (up to floating-point rounding) across a varied input block, per
// property 3 ("DCT/IDCT round trip is within epsilon of identity").
func TestDCTRoundTrip(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = int32(i%17) - 8
	}
	coeffs := ForwardDCT(&b)
	spatial := InverseDCT(&coeffs)
	for i := range spatial {
		almostEqual(t, float64(b[i]), spatial[i], 1e-6)
	}
}

func TestDCTAlphaAndBasisShape(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt2, dctAlpha[0], 1e-12)
	for u := 1; u < 8; u++ {
		assert.InDelta(t, 1.0, dctAlpha[u], 1e-12)
	}
	// basis[0][n] is constant (k=0 -> cos(0) == 1)
	for n := 0; n < 8; n++ {
		assert.InDelta(t, 1.0, dctBasis[0][n], 1e-12)
	}
}
