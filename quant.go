package jpegcodec

// QuantTable is an 8x8 table of quantization divisors in natural (not
// zig-zag) order, entries in [1,255] per §3.
type QuantTable [64]int32

// ScaleQuantTable derives a quality-scaled table from a base table and a
// quality factor q in [1,100], per §3:
//
//	scale = q<50 ? 5000/q : 200-2q
//	Q'[i,j] = clip(floor((Q[i,j]*scale + 50)/100), 1, 255)
//
// Grounded on the teacher's Encode (writer.go): identical scale derivation
// and clip, reimplemented over the natural-order table this repo uses
// instead of the teacher's zig-zag-order unscaledQuant.
func ScaleQuantTable(base *QuantTable, quality int) (*QuantTable, error) {
	if quality < 1 || quality > 100 {
		return nil, newError(InvalidArgument, "quality %d out of range [1,100]", quality)
	}
	var scale int32
	if quality < 50 {
		scale = int32(5000 / quality)
	} else {
		scale = int32(200 - 2*quality)
	}
	var out QuantTable
	for i, v := range base {
		x := (v*scale + 50) / 100
		if x < 1 {
			x = 1
		} else if x > 255 {
			x = 255
		}
		out[i] = x
	}
	return &out, nil
}

// roundHalfAwayFromZero rounds v to the nearest integer, ties away from
// zero (not banker's rounding), per §4.6.
func roundHalfAwayFromZero(v float64) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return -int32(-v + 0.5)
}

// Quantize divides each coefficient by its corresponding quantization
// table entry and rounds half-away-from-zero, per §4.6: Qe[u,v] =
// round(S[u,v] / Q[u,v]).
func Quantize(coeffs *[64]float64, q *QuantTable) Block {
	var out Block
	for i, c := range coeffs {
		out[i] = roundHalfAwayFromZero(c / float64(q[i]))
	}
	return out
}

// Dequantize multiplies each quantized coefficient by its table entry, per
// §4.6: Sd[u,v] = Qe[u,v] * Q[u,v].
func Dequantize(qblock *Block, q *QuantTable) [64]float64 {
	var out [64]float64
	for i, c := range qblock {
		out[i] = float64(c * q[i])
	}
	return out
}
