package jpegcodec

// huffCode is a canonical code: its bit pattern, right-justified, and its
// length in bits.
type huffCode struct {
	code uint32
	len  uint8
}

// Table is a canonical Huffman table built from a (BITS, HUFFVAL) spec per
// §4.3: within one code length, codes are consecutive; crossing a length,
// the running code is doubled (shifted) then incremented. Once built it is
// immutable and safe to share by reference across all blocks of a scan
// (§3, §5).
type Table struct {
	encode   map[byte]huffCode // symbol -> code
	decode   map[huffCode]byte // (code,len) -> symbol
	maxLen   uint8
}

// NewTable builds a canonical Huffman table from a HuffSpec, per §4.3's
// construction algorithm. It fails with BadTable if sum(Bits) != len(HuffVal)
// or if canonical code generation overflows (a code would need more than 16
// bits, or more codes are demanded at a length than fit below the next
// length's starting code).
//
// Grounded on the teacher's huffmanLUT.init in writer.go, which runs the
// same code/length bookkeeping (packing code and length into one machine
// word and left-shifting across lengths) but assumes its input -
// theHuffmanSpec - is always well-formed. This repo's Table is built from
// user-supplied specs too (§12), so it must validate rather than assume.
func NewTable(spec HuffSpec) (*Table, error) {
	var total int
	for _, c := range spec.Bits {
		total += int(c)
	}
	if total != len(spec.HuffVal) {
		return nil, newError(BadTable, "sum(BITS)=%d does not match len(HUFFVAL)=%d", total, len(spec.HuffVal))
	}

	t := &Table{
		encode: make(map[byte]huffCode, len(spec.HuffVal)),
		decode: make(map[huffCode]byte, len(spec.HuffVal)),
	}

	var code uint32
	idx := 0
	for length := 1; length <= 16; length++ {
		count := int(spec.Bits[length-1])
		for k := 0; k < count; k++ {
			if length < 32 && code >= (uint32(1)<<uint(length)) {
				return nil, newError(BadTable, "canonical code overflow at length %d", length)
			}
			symbol := spec.HuffVal[idx]
			hc := huffCode{code: code, len: uint8(length)}
			t.encode[symbol] = hc
			t.decode[hc] = symbol
			if uint8(length) > t.maxLen {
				t.maxLen = uint8(length)
			}
			idx++
			code++
		}
		code <<= 1
	}
	return t, nil
}

// Encode returns the (code, length) for symbol, or false if symbol is not
// present in the table.
func (t *Table) Encode(symbol byte) (code uint32, length uint8, ok bool) {
	hc, ok := t.encode[symbol]
	return hc.code, hc.len, ok
}

// WriteSymbol writes symbol's canonical code to w.
func (t *Table) WriteSymbol(w *BitWriter, symbol byte) error {
	code, length, ok := t.Encode(symbol)
	if !ok {
		return newError(BadTable, "symbol %d not present in huffman table", symbol)
	}
	return w.WriteBits(code, uint32(length))
}

// ReadSymbol decodes one symbol from r by reading one bit at a time, per
// §4.3: "maintain (code_so_far, bits_read) and check membership per step".
// It fails with BadCode if maxLen bits are consumed with no match, or
// StreamTruncated if the underlying reader runs out of bits first.
//
// Grounded on the bit-at-a-time prefix match implied by the teacher's
// decodeHuffman call sites in scan.go (processSOS, refine): the decoder
// never buffers more bits than the shortest matching prefix needs.
func (t *Table) ReadSymbol(r *BitReader) (byte, error) {
	var hc huffCode
	for hc.len < t.maxLen {
		res := r.ReadBit()
		if res.eos {
			return 0, newError(StreamTruncated, "end of stream while decoding huffman code")
		}
		hc.code = hc.code<<1 | uint32(res.bit)
		hc.len++
		if symbol, ok := t.decode[hc]; ok {
			return symbol, nil
		}
	}
	return 0, newError(BadCode, "no huffman code matched within %d bits", t.maxLen)
}
