package jpegcodec

import "fmt"

// Kind classifies a codec failure per the error taxonomy: InvalidArgument,
// BadTable, BadCode, StreamTruncated, BadRLE and BadVLI.
type Kind int

const (
	// InvalidArgument covers shape mismatches, non-RGB input, an
	// out-of-range quality, or an internal size that isn't a multiple
	// of 8.
	InvalidArgument Kind = iota
	// BadTable means a Huffman BITS/HUFFVAL pair is inconsistent, or
	// canonical code generation overflowed.
	BadTable
	// BadCode means a decoded bit sequence matched no Huffman code
	// within the table's maximum code length.
	BadCode
	// StreamTruncated means the bit reader hit end-of-stream inside a
	// code, a VLI tail, or mid-MCU.
	StreamTruncated
	// BadRLE means a decoded RLE pair would overflow the 63-coefficient
	// AC limit.
	BadRLE
	// BadVLI means a VLI category and its bit-string length disagree.
	BadVLI
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case BadTable:
		return "BadTable"
	case BadCode:
		return "BadCode"
	case StreamTruncated:
		return "StreamTruncated"
	case BadRLE:
		return "BadRLE"
	case BadVLI:
		return "BadVLI"
	default:
		return "Unknown"
	}
}

// Error is the codec's error type: a Kind plus a human-readable message.
// Callers that need to branch on failure category should compare Kind
// (or use errors.Is against the sentinel of that Kind).
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("jpegcodec: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is a sentinel for the same Kind, so that
// errors.Is(err, jpegcodec.ErrBadCode) works regardless of message text.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is comparisons against a specific Kind.
var (
	ErrInvalidArgument = &Error{Kind: InvalidArgument, Msg: "invalid argument"}
	ErrBadTable        = &Error{Kind: BadTable, Msg: "bad huffman table"}
	ErrBadCode         = &Error{Kind: BadCode, Msg: "bad huffman code"}
	ErrStreamTruncated = &Error{Kind: StreamTruncated, Msg: "stream truncated"}
	ErrBadRLE          = &Error{Kind: BadRLE, Msg: "bad rle"}
	ErrBadVLI          = &Error{Kind: BadVLI, Msg: "bad vli"}
)
