package jpegcodec

import "go.uber.org/zap"

// Decoder mirrors Encoder: it holds the quantization and Huffman tables
// for a given quality, reusable across scans decoded at that quality. The
// package-level Decode function builds one per call using the quality
// recorded in the envelope header (container.go); construct a Decoder
// directly only when decoding many scans at a known, shared quality
// without paying to rebuild its tables each time.
type Decoder struct {
	quantLuma, quantChroma   *QuantTable
	dcLumaTab, acLumaTab     *Table
	dcChromaTab, acChromaTab *Table
	logger                   *zap.Logger
}

// NewDecoder builds the quantization and Huffman tables for opts.Quality.
func NewDecoder(opts Options) (*Decoder, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	qLuma, err := ScaleQuantTable(&BaseQuantLuma, opts.Quality)
	if err != nil {
		return nil, err
	}
	qChroma, err := ScaleQuantTable(&BaseQuantChroma, opts.Quality)
	if err != nil {
		return nil, err
	}
	dcLuma, err := NewTable(DefaultDCLuma)
	if err != nil {
		return nil, err
	}
	acLuma, err := NewTable(DefaultACLuma)
	if err != nil {
		return nil, err
	}
	dcChroma, err := NewTable(DefaultDCChroma)
	if err != nil {
		return nil, err
	}
	acChroma, err := NewTable(DefaultACChroma)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		quantLuma:   qLuma,
		quantChroma: qChroma,
		dcLumaTab:   dcLuma,
		acLumaTab:   acLuma,
		dcChromaTab: dcChroma,
		acChromaTab: acChroma,
		logger:      logger,
	}, nil
}

// clampPixel performs the +128 level un-shift and clips to [0,255], per
// §4.5 ("On decode, 128 is added back and the result is rounded and
// clipped to [0,255]"). Grounded on the teacher's clampToUint8 in scan.go.
func clampPixel(v float64) int32 {
	c := roundHalfAwayFromZero(v) + 128
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

// decodeBlock reads one Huffman/VLI-coded block from r and returns the
// reconstructed (dequantized, inverse-DCT'd, level-unshifted, clipped)
// spatial block, along with the block's absolute DC value (the new
// predictor state). Grounded on the teacher's scan.go decode loop
// (decodeHuffman for the DC/AC symbols, receiveExtend for VLI, then
// reconstructBlock's dequantize-unroll + idct + clampToUint8), collapsed
// back into the natural-order/per-cell loop this repo's Dequantize/
// InverseDCT already express, rather than the teacher's manually unrolled
// 64-line dequantize.
//
// A malformed AC run that overflows the 63-coefficient limit does not fail
// this block: per §7/§9, RLE overflow is recoverable in-block, so
// decodeBlock stops the block (zero-padded tail) and returns it
// successfully instead of propagating BadRLE to the caller.
func (d *Decoder) decodeBlock(r *BitReader, kind componentKind, prevDC int32) (Block, int32, error) {
	q := d.quantLuma
	dcTab, acTab := d.dcLumaTab, d.acLumaTab
	if kind != compY {
		q = d.quantChroma
		dcTab, acTab = d.dcChromaTab, d.acChromaTab
	}

	dcSymbol, err := dcTab.ReadSymbol(r)
	if err != nil {
		return Block{}, 0, err
	}
	category := uint32(dcSymbol)
	if category > 11 {
		return Block{}, 0, newError(BadVLI, "dc category %d exceeds baseline limit of 11", category)
	}
	var magnitude uint32
	if category > 0 {
		magnitude, err = r.ReadBits(category)
		if err != nil {
			return Block{}, 0, err
		}
	}
	delta := DecodeVLI(category, magnitude)
	dc := prevDC + delta

	var pairs []ACPair
	pos := 0
	for pos < 63 {
		symbol, err := acTab.ReadSymbol(r)
		if err != nil {
			return Block{}, 0, err
		}
		run := int32(symbol >> 4)
		sizeCategory := uint32(symbol & 0x0f)
		if sizeCategory == 0 {
			if run == 15 { // ZRL
				pairs = append(pairs, ACPair{Run: 15, Value: 0})
				pos += 16
				continue
			}
			break // EOB
		}
		magnitude, err := r.ReadBits(sizeCategory)
		if err != nil {
			return Block{}, 0, err
		}
		pairs = append(pairs, ACPair{Run: run, Value: DecodeVLI(sizeCategory, magnitude)})
		pos += int(run) + 1
	}

	// Rebuild the 63-coefficient AC vector the same way acrle.go's own
	// tests exercise: hand the decoded (run,value) pairs to DecodeACRun
	// rather than re-deriving its run/ZRL/overflow bookkeeping inline.
	// RLE overflow is recoverable in-block (pad zeros, stop this block),
	// not scan-aborting, per §7/§9's defensive rule — unlike
	// BadCode/StreamTruncated/BadVLI, a BadRLE here is swallowed and the
	// zero-padded tail DecodeACRun already produced is kept.
	ac, acErr := DecodeACRun(pairs)
	if acErr != nil && acErr.(*Error).Kind != BadRLE {
		return Block{}, 0, acErr
	}

	var zz [64]int32
	zz[0] = dc
	copy(zz[1:], ac[:])
	natural := InverseZigZag(zz)
	coeffs := Dequantize(&natural, q)
	spatial := InverseDCT(&coeffs)

	var blk Block
	for i, v := range spatial {
		blk[i] = clampPixel(v)
	}
	return blk, dc, nil
}

// Decode reverses Encode: it unpacks the envelope, reconstructs the 4:2:0
// YCbCr planes MCU by MCU, and converts back to RGB, per §4.10/§14.
//
// Failure semantics per §7/§4.10: any per-block decode failure
// (BadCode/StreamTruncated/BadVLI) aborts the scan; blocks already decoded
// are kept and every remaining block (including the one that failed) is
// left zero-filled, so Decode always returns an image of the envelope's
// declared size, best-effort. The error that aborted the scan is also
// returned, so a caller that wants strict round-trip correctness can
// check it.
func (d *Decoder) Decode(data []byte) (*Image, error) {
	width, height, _, payload, err := unpackContainer(data)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, newError(InvalidArgument, "envelope declares non-positive size %dx%d", width, height)
	}

	wy := padUp(width, 16)
	hy := padUp(height, 16)
	yCols, yRows := wy/8, hy/8
	cCols, cRows := (wy/2)/8, (hy/2)/8
	mcuCols, mcuRows := yCols/2, yRows/2

	d.logger.Debug("decode: scan geometry",
		zap.Int("width", width), zap.Int("height", height),
		zap.Int("mcu_cols", mcuCols), zap.Int("mcu_rows", mcuRows))

	yBlocks := make([]Block, yCols*yRows)
	cbBlocks := make([]Block, cCols*cRows)
	crBlocks := make([]Block, cCols*cRows)

	r := NewBitReader(payload)
	var prevY, prevCb, prevCr int32
	var scanErr error

loop:
	for my := 0; my < mcuRows; my++ {
		for mx := 0; mx < mcuCols; mx++ {
			for i := 0; i < 4; i++ {
				bx := 2*mx + (i & 1)
				by := 2*my + (i >> 1)
				blk, dc, err := d.decodeBlock(r, compY, prevY)
				if err != nil {
					scanErr = err
					break loop
				}
				prevY = dc
				yBlocks[by*yCols+bx] = blk
			}
			cbBlk, dc, err := d.decodeBlock(r, compCb, prevCb)
			if err != nil {
				scanErr = err
				break loop
			}
			prevCb = dc
			cbBlocks[my*cCols+mx] = cbBlk

			crBlk, dc, err := d.decodeBlock(r, compCr, prevCr)
			if err != nil {
				scanErr = err
				break loop
			}
			prevCr = dc
			crBlocks[my*cCols+mx] = crBlk
		}
	}

	planes := &YCbCrPlanes{
		Y:      reassembleBlocks8(yBlocks, yCols, yRows, wy, hy),
		Cb:     reassembleBlocks8(cbBlocks, cCols, cRows, wy/2, hy/2),
		Cr:     reassembleBlocks8(crBlocks, cCols, cRows, wy/2, hy/2),
		Width:  width,
		Height: height,
	}
	img := ReassembleImage(planes)

	if scanErr != nil {
		d.logger.Debug("decode: scan aborted, returning best-effort image", zap.Error(scanErr))
		return img, scanErr
	}
	return img, nil
}

// Decode is the package-level convenience form of the core API (§6):
// decode(bytes) -> (image, W, H). The quality used to dequantize is read
// back from the envelope header (container.go) rather than supplied by
// the caller, so this function's signature matches §6's decode(bytes)
// exactly.
func Decode(data []byte) (*Image, error) {
	_, _, quality, _, err := unpackContainer(data)
	if err != nil {
		return nil, err
	}
	dec, err := NewDecoder(Options{Quality: quality})
	if err != nil {
		return nil, err
	}
	return dec.Decode(data)
}
