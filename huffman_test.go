package jpegcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsLengthMismatch(t *testing.T) {
	spec := HuffSpec{
		Bits:    [16]byte{1},
		HuffVal: []byte{1, 2}, // claims 1 code but lists 2 symbols
	}
	_, err := NewTable(spec)
	require.Error(t, err)
	var jerr *Error
	require.ErrorAs(t, err, &jerr)
	assert.Equal(t, BadTable, jerr.Kind)
}

func TestDefaultTablesBuild(t *testing.T) {
	for _, spec := range []HuffSpec{DefaultDCLuma, DefaultACLuma, DefaultDCChroma, DefaultACChroma} {
		_, err := NewTable(spec)
		require.NoError(t, err)
	}
}

func TestHuffmanEncodeDecodeRoundTrip(t *testing.T) {
	tbl, err := NewTable(DefaultACLuma)
	require.NoError(t, err)

	for _, symbol := range DefaultACLuma.HuffVal {
		w := NewBitWriter()
		require.NoError(t, tbl.WriteSymbol(w, symbol))
		data := w.Finalize()

		r := NewBitReader(data)
		got, err := tbl.ReadSymbol(r)
		require.NoErrorf(t, err, "symbol %#x", symbol)
		assert.Equalf(t, symbol, got, "symbol %#x round trip", symbol)
	}
}

func TestHuffmanEncodeUnknownSymbol(t *testing.T) {
	tbl, err := NewTable(DefaultDCLuma)
	require.NoError(t, err)
	w := NewBitWriter()
	err = tbl.WriteSymbol(w, 255)
	require.Error(t, err)
}

func TestHuffmanDecodeTruncatedStream(t *testing.T) {
	tbl, err := NewTable(DefaultACLuma)
	require.NoError(t, err)
	r := NewBitReader(nil)
	_, err = tbl.ReadSymbol(r)
	require.Error(t, err)
	var jerr *Error
	require.ErrorAs(t, err, &jerr)
	assert.Equal(t, StreamTruncated, jerr.Kind)
}

// TestHuffmanCodesArePrefixFree verifies the canonical construction never
// produces one code as a bit-prefix of another, which would make decoding
// ambiguous.
func TestHuffmanCodesArePrefixFree(t *testing.T) {
	tbl, err := NewTable(DefaultACChroma)
	require.NoError(t, err)

	type entry struct {
		code uint32
		len  uint8
	}
	var all []entry
	for _, symbol := range DefaultACChroma.HuffVal {
		code, length, ok := tbl.Encode(symbol)
		require.True(t, ok)
		all = append(all, entry{code, length})
	}
	for i := range all {
		for j := range all {
			if i == j {
				continue
			}
			a, b := all[i], all[j]
			if a.len >= b.len {
				continue
			}
			prefix := b.code >> (b.len - a.len)
			assert.NotEqualf(t, a.code, prefix, "code %d (len %d) is a prefix of code %d (len %d)", a.code, a.len, b.code, b.len)
		}
	}
}
