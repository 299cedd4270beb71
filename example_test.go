package jpegcodec_test

import (
	"fmt"

	"github.com/nwidger/jpegcodec"
)

// This example replaces the teacher's progressive-scan-script demo
// (example_custom_script.go) with the equivalent walkthrough for this
// codec's non-progressive baseline pipeline: build an image, encode it,
// and decode it back.
func Example() {
	img := jpegcodec.NewImage(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, uint8(x*16), uint8(y*16), 128)
		}
	}

	data, err := jpegcodec.Encode(img, 75)
	if err != nil {
		panic(err)
	}

	decoded, err := jpegcodec.Decode(data)
	if err != nil {
		panic(err)
	}

	fmt.Println(decoded.Width, decoded.Height)
	// Output: 16 16
}
