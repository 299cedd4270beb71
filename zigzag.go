package jpegcodec

// zigzagOrder maps a zig-zag scan index (0..63) to the natural row-major
// index (row*8+col) of an 8x8 block, per T.81 Figure A.6. The teacher's
// writer.go and scan.go both reference a table of this shape as "unzig";
// the table itself lived in the stdlib fork's idct.go, which wasn't among
// the retrieved files, so it is hard-coded here per §4.4's standard
// pattern instead of copied.
var zigzagOrder = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// inverseZigzagOrder is the inverse permutation: naturalIndex -> zigzag
// index. It is its own lookup per §4.4.
var inverseZigzagOrder = func() [64]int {
	var inv [64]int
	for zig, nat := range zigzagOrder {
		inv[nat] = zig
	}
	return inv
}()

// ZigZag reads an 8x8 block in natural (row-major) order and returns its
// 64-element zig-zag scan.
func ZigZag(b *Block) [64]int32 {
	var out [64]int32
	for zig, nat := range zigzagOrder {
		out[zig] = b[nat]
	}
	return out
}

// InverseZigZag reverses ZigZag, rebuilding the natural-order 8x8 block
// from its 64-element zig-zag scan.
func InverseZigZag(v [64]int32) Block {
	var b Block
	for zig, nat := range zigzagOrder {
		b[nat] = v[zig]
	}
	return b
}
