package jpegcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockAtSet(t *testing.T) {
	var b Block
	b.Set(3, 5, 42)
	assert.EqualValues(t, 42, b.At(3, 5))
	assert.EqualValues(t, 42, b[3*8+5])
}

func TestImageAtSet(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(1, 0, 1, 2, 3)
	r, g, b := img.At(1, 0)
	assert.EqualValues(t, 1, r)
	assert.EqualValues(t, 2, g)
	assert.EqualValues(t, 3, b)
}

func TestPadUp(t *testing.T) {
	assert.Equal(t, 8, padUp(8, 8))
	assert.Equal(t, 16, padUp(9, 8))
	assert.Equal(t, 16, padUp(16, 16))
	assert.Equal(t, 32, padUp(17, 16))
}

func TestSplitBlocks8ZeroPadsEdge(t *testing.T) {
	p := NewPlane(10, 10)
	for i := range p.Pix {
		p.Pix[i] = 1
	}
	blocks, wide, high := splitBlocks8(p)
	assert.Equal(t, 2, wide)
	assert.Equal(t, 2, high)

	// the bottom-right block straddles the logical 10x10 edge: only its
	// top-left 2x2 corner should carry real data, the rest zero-padded.
	br := blocks[1*wide+1]
	assert.EqualValues(t, 1, br.At(0, 0))
	assert.EqualValues(t, 1, br.At(1, 1))
	assert.EqualValues(t, 0, br.At(2, 2))
	assert.EqualValues(t, 0, br.At(7, 7))
}

func TestReassembleBlocks8RoundTrip(t *testing.T) {
	p := NewPlane(10, 10)
	for i := range p.Pix {
		p.Pix[i] = uint8(i % 250)
	}
	blocks, wide, high := splitBlocks8(p)
	back := reassembleBlocks8(blocks, wide, high, 10, 10)
	assert.Equal(t, p.Pix, back.Pix)
}

func TestReassembleBlocks8Clips(t *testing.T) {
	blocks := []Block{{}}
	blocks[0][0] = 300
	blocks[0][1] = -10
	back := reassembleBlocks8(blocks, 1, 1, 8, 8)
	assert.EqualValues(t, 255, back.Pix[0])
	assert.EqualValues(t, 0, back.Pix[1])
}
