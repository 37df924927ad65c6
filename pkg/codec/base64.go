package codec

import (
	"github.com/valyala/bytebufferpool"

	"github.com/wavesplatform/bytecodec/pkg/errs"
)

// ToBase64 encodes the bytes with the Base64 block transform, 3 bytes to 4
// characters. No padding is produced: the byte count must be a multiple of 3,
// otherwise NonMultipleOfThreeLength is returned. Use ToBase64Padded for
// arbitrary lengths.
func (bs ByteString) ToBase64() (string, error) {
	if len(bs.bytes)%base64BlockSize != 0 {
		return "", errs.NewNonMultipleOfThreeLength(len(bs.bytes))
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	encodeBlocks(buf, bs.bytes)
	return buf.String(), nil
}

// ToBase64Padded encodes the bytes as standard Base64, completing a partial
// final group with '=' characters.
func (bs ByteString) ToBase64Padded() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	encodePadded(buf, bs.bytes)
	return buf.String()
}

func encodePadded(buf *bytebufferpool.ByteBuffer, bytes []Byte) {
	full := len(bytes) - len(bytes)%base64BlockSize
	encodeBlocks(buf, bytes[:full])
	switch rest := bytes[full:]; len(rest) {
	case 1:
		t1 := rest[0]
		_ = buf.WriteByte(Base64Alphabet[t1>>2])
		_ = buf.WriteByte(Base64Alphabet[(t1&0x03)<<4])
		_ = buf.WriteByte(Base64Padding)
		_ = buf.WriteByte(Base64Padding)
	case 2:
		t1, t2 := rest[0], rest[1]
		_ = buf.WriteByte(Base64Alphabet[t1>>2])
		_ = buf.WriteByte(Base64Alphabet[(t1&0x03)<<4|t2>>4])
		_ = buf.WriteByte(Base64Alphabet[(t2&0x0f)<<2])
		_ = buf.WriteByte(Base64Padding)
	}
}

// encodeBlocks appends the Base64 characters of whole 3-byte blocks to buf.
// len(bytes) must be a multiple of 3.
func encodeBlocks(buf *bytebufferpool.ByteBuffer, bytes []Byte) {
	for i := 0; i+base64BlockSize <= len(bytes); i += base64BlockSize {
		t1, t2, t3 := bytes[i], bytes[i+1], bytes[i+2]
		_ = buf.WriteByte(Base64Alphabet[t1>>2])
		_ = buf.WriteByte(Base64Alphabet[(t1&0x03)<<4|t2>>4])
		_ = buf.WriteByte(Base64Alphabet[(t2&0x0f)<<2|t3>>6])
		_ = buf.WriteByte(Base64Alphabet[t3&0x3f])
	}
}
