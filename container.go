package jpegcodec

import "encoding/binary"

// envelopeFieldWidth is N from §6: the fixed width, in bytes, of each
// header field, little-endian. This codec's own minimal envelope is not
// JFIF and carries no SOI/DQT/DHT/SOF/SOS/EOI markers (§6); it exists only
// so the sample CLI driver has something to write to disk.
const envelopeFieldWidth = 4

// modeRGB is the only supported envelope mode (§6: "mode (1 byte, 0 =
// RGB)").
const modeRGB = 0

// The envelope also carries the quality factor the payload was quantized
// at. §6 lists mode/width/height/payload and doesn't enumerate a quality
// field, but the core API it specifies is decode(bytes) -> (W,H) with no
// quality argument — and dequantization needs the exact Q table the
// encoder used, which this envelope otherwise has no way to recover
// (unlike real JFIF, it carries no DQT segment). Folding quality into the
// header is the smallest change that keeps the documented decode(bytes)
// signature honest; it occupies the same fixed N-byte little-endian slot
// as the other header fields.
const envelopeHeaderFields = 4 // mode, width, height, quality

// packContainer builds the minimal envelope: mode, width, height, quality
// (each envelopeFieldWidth bytes, little-endian) followed by the
// entropy-coded payload.
func packContainer(width, height, quality int, payload []byte) []byte {
	buf := make([]byte, envelopeHeaderFields*envelopeFieldWidth+len(payload))
	binary.LittleEndian.PutUint32(buf[0*envelopeFieldWidth:], modeRGB)
	binary.LittleEndian.PutUint32(buf[1*envelopeFieldWidth:], uint32(width))
	binary.LittleEndian.PutUint32(buf[2*envelopeFieldWidth:], uint32(height))
	binary.LittleEndian.PutUint32(buf[3*envelopeFieldWidth:], uint32(quality))
	copy(buf[envelopeHeaderFields*envelopeFieldWidth:], payload)
	return buf
}

// unpackContainer reverses packContainer, returning the logical width,
// height, quality and the entropy-coded payload slice (a view into data,
// not a copy). Fails with InvalidArgument if data is too short for the
// header or names an unsupported mode.
func unpackContainer(data []byte) (width, height, quality int, payload []byte, err error) {
	if len(data) < envelopeHeaderFields*envelopeFieldWidth {
		return 0, 0, 0, nil, newError(InvalidArgument, "envelope shorter than header (%d bytes)", len(data))
	}
	mode := binary.LittleEndian.Uint32(data[0*envelopeFieldWidth:])
	if mode != modeRGB {
		return 0, 0, 0, nil, newError(InvalidArgument, "unsupported envelope mode %d", mode)
	}
	width = int(binary.LittleEndian.Uint32(data[1*envelopeFieldWidth:]))
	height = int(binary.LittleEndian.Uint32(data[2*envelopeFieldWidth:]))
	quality = int(binary.LittleEndian.Uint32(data[3*envelopeFieldWidth:]))
	payload = data[envelopeHeaderFields*envelopeFieldWidth:]
	return width, height, quality, payload, nil
}
