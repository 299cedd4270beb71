package jpegcodec

// ACPair is a decoded (or to-be-encoded) run-length/value pair from the AC
// coefficient stream, per §4.9/GLOSSARY. ZRL is the sentinel Run=15,
// Value=0 meaning "16 zeros"; EOB is Run=0, Value=0 meaning "the rest of
// the block is zero". Using a struct instead of two magic-constant
// integers makes the {EOB, ZRL, (run,size)} tagged variant explicit
// (§9: "Dynamic typing in source... replace with explicit value variants").
type ACPair struct {
	Run   int32
	Value int32
}

// IsEOB reports whether p is the end-of-block sentinel.
func (p ACPair) IsEOB() bool { return p.Run == 0 && p.Value == 0 }

// IsZRL reports whether p is the zero-run-length marker (16 zeros).
func (p ACPair) IsZRL() bool { return p.Run == 15 && p.Value == 0 }

// EncodeACRun run-length encodes the 63 AC coefficients of a zig-zag scan
// (ac[0] is scan position 1, i.e. the first AC coefficient) into
// (run,value) pairs, per §4.9: count zero runs, emit ZRL at a run of 16,
// emit (run,value) on a nonzero value, and emit EOB once at the end if
// zeros are left over after the last emitted pair (or no pair was
// produced). A block whose trailing zeros end exactly on a ZRL gets no EOB.
//
// Grounded on the teacher's writeBlock run-length loop in writer.go
// (`runLength` counter, `emitHuff(h, 0xf0)` for ZRL every 16 zeros,
// trailing `emitHuff(h, 0x00)` for EOB), lifted out of the Huffman-writing
// call into a standalone RLE transform per §12.
func EncodeACRun(ac [63]int32) []ACPair {
	var pairs []ACPair
	run := int32(0)
	for _, v := range ac {
		if v == 0 {
			run++
			if run == 16 {
				pairs = append(pairs, ACPair{Run: 15, Value: 0})
				run = 0
			}
			continue
		}
		pairs = append(pairs, ACPair{Run: run, Value: v})
		run = 0
	}
	if run > 0 || len(pairs) == 0 {
		pairs = append(pairs, ACPair{Run: 0, Value: 0})
	}
	return pairs
}

// DecodeACRun rebuilds the 63-element AC vector from a sequence of pairs,
// per §4.9: EOB zero-fills the tail, ZRL appends 16 zeros, and (r,v)
// appends r zeros then v. If a pair would push the cursor past 63
// coefficients, the excess is discarded and decoding of this block stops
// (BadRLE, recoverable in-block per §7/§9 "defensive rule").
func DecodeACRun(pairs []ACPair) ([63]int32, error) {
	var ac [63]int32
	pos := 0
	for _, p := range pairs {
		if p.IsEOB() {
			break
		}
		if p.IsZRL() {
			pos += 16
			if pos > 63 {
				return ac, newError(BadRLE, "zrl run overflows 63-coefficient block")
			}
			continue
		}
		pos += int(p.Run)
		if pos >= 63 {
			return ac, newError(BadRLE, "run overflows 63-coefficient block")
		}
		ac[pos] = p.Value
		pos++
	}
	return ac, nil
}
