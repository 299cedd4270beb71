package jpegcodec

import "math/bits"

// EncodeVLI returns the category S and magnitude bits M for a signed
// integer x, per §4.2. S = 0 iff x == 0; otherwise S is the number of bits
// needed to represent |x| (bit_length(|x|)). For x > 0, M = |x|; for x < 0,
// M is the ones'-complement of |x| within S bits.
//
// Grounded on the teacher's bitCount table and the sign-handling in
// encoder.emitHuffRLE (writer.go): "a, b := value, value; if a < 0 { a, b =
// -value, value-1 }" computes exactly this category/magnitude split, just
// inline rather than as a standalone function.
func EncodeVLI(x int32) (category uint32, magnitude uint32) {
	if x == 0 {
		return 0, 0
	}
	abs := x
	if abs < 0 {
		abs = -abs
	}
	s := uint32(bits.Len32(uint32(abs)))
	if x > 0 {
		return s, uint32(x)
	}
	return s, uint32((int32(1)<<s)-1) + uint32(x)
}

// DecodeVLI reverses EncodeVLI. M must satisfy 0 <= M < 2^S; callers that
// read S and M from a stream and find that invariant violated should treat
// it as BadVLI rather than calling this function.
func DecodeVLI(category uint32, magnitude uint32) int32 {
	if category == 0 {
		return 0
	}
	half := uint32(1) << (category - 1)
	if magnitude >= half {
		return int32(magnitude)
	}
	full := uint32(1) << category
	return int32(magnitude) - int32(full-1)
}

// vliCategory returns the VLI category of x without computing the
// magnitude; used where only the Huffman-coded category matters.
func vliCategory(x int32) uint32 {
	c, _ := EncodeVLI(x)
	return c
}
