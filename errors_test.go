package jpegcodec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsBySentinel(t *testing.T) {
	err := newError(BadCode, "no match for prefix %x", 0x1f)
	assert.True(t, errors.Is(err, ErrBadCode))
	assert.False(t, errors.Is(err, ErrBadTable))
}

func TestErrorMessageIncludesKind(t *testing.T) {
	err := newError(StreamTruncated, "ran out at bit %d", 7)
	assert.Contains(t, err.Error(), "StreamTruncated")
	assert.Contains(t, err.Error(), "ran out at bit 7")
}

func TestKindStringUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", Kind(99).String())
}
