package codec

import (
	"github.com/ccoveille/go-safecast"

	"github.com/wavesplatform/bytecodec/pkg/errs"
)

// Byte is a single raw 8-bit value.
type Byte uint8

// NewByte converts v to a Byte, failing if it does not fit into [0, 255].
func NewByte(v int) (Byte, error) {
	b, err := safecast.ToUint8(v)
	if err != nil {
		return 0, errs.NewByteOutOfRange(v)
	}
	return Byte(b), nil
}

// ByteFromHex combines two hex characters, most significant first, into a
// Byte. Case is ignored.
func ByteFromHex(hi, lo byte) (Byte, error) {
	h, ok := nibble(hi)
	if !ok {
		return 0, errs.NewInvalidHexCharacter(hi, 0)
	}
	l, ok := nibble(lo)
	if !ok {
		return 0, errs.NewInvalidHexCharacter(lo, 1)
	}
	return Byte(h<<4 | l), nil
}

func (b Byte) Value() uint8 {
	return uint8(b)
}

// ToHex returns the two hex characters of the byte, high nibble first.
func (b Byte) ToHex() (hi, lo byte) {
	return HexAlphabet[b>>4], HexAlphabet[b&0x0f]
}

func (b Byte) String() string {
	hi, lo := b.ToHex()
	return string([]byte{hi, lo})
}
