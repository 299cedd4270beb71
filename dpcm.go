package jpegcodec

// DPCMEncode differentially codes a component's per-block DC sequence per
// §4.8: delta[0] = d[0], delta[i] = d[i] - d[i-1]. The predictor resets to
// 0 at the start of each call (no restart markers in this baseline, per
// §1's Non-goals).
//
// Grounded on the teacher's prevDCY/prevDCCb/prevDCCr accumulator pattern
// in processImageBlocks (writer.go), lifted out of the per-block encode
// loop into a standalone sequence transform per §12 (the original's
// dc_differential_coding.py keeps DPCM as a free function over a whole
// sequence too).
func DPCMEncode(dc []int32) []int32 {
	out := make([]int32, len(dc))
	var prev int32
	for i, v := range dc {
		out[i] = v - prev
		prev = v
	}
	return out
}

// DPCMDecode reverses DPCMEncode by accumulating the deltas.
func DPCMDecode(deltas []int32) []int32 {
	out := make([]int32, len(deltas))
	var prev int32
	for i, d := range deltas {
		prev += d
		out[i] = prev
	}
	return out
}
