package codec

import (
	"github.com/mr-tron/base58/base58"
	"github.com/valyala/bytebufferpool"

	"github.com/wavesplatform/bytecodec/pkg/errs"
)

// ByteString is an ordered sequence of bytes. It owns its storage: every
// constructor copies its input and Bytes returns a copy, so a ByteString is
// never changed after creation.
type ByteString struct {
	bytes []Byte
}

func NewByteString(bytes ...Byte) ByteString {
	if len(bytes) == 0 {
		return ByteString{}
	}
	b := make([]Byte, len(bytes))
	copy(b, bytes)
	return ByteString{bytes: b}
}

func FromBytes(data []byte) ByteString {
	if len(data) == 0 {
		return ByteString{}
	}
	b := make([]Byte, len(data))
	for i, v := range data {
		b[i] = Byte(v)
	}
	return ByteString{bytes: b}
}

// FromHex decodes a hex string into a ByteString. The input must have even
// length and consist of hex characters only; case is ignored. Nothing is
// decoded from invalid input.
func FromHex(s string) (ByteString, error) {
	if len(s)%hexPairSize != 0 {
		return ByteString{}, errs.NewOddLengthInput(len(s))
	}
	if len(s) == 0 {
		return ByteString{}, nil
	}
	b := make([]Byte, len(s)/hexPairSize)
	for i := range b {
		p := i * hexPairSize
		v, err := ByteFromHex(s[p], s[p+1])
		if err != nil {
			if ihc, ok := err.(*errs.InvalidHexCharacter); ok {
				return ByteString{}, ihc.Shift(p)
			}
			return ByteString{}, err
		}
		b[i] = v
	}
	return ByteString{bytes: b}, nil
}

func (bs ByteString) Len() int {
	return len(bs.bytes)
}

// At returns the byte at position i. It panics if i is out of range.
func (bs ByteString) At(i int) Byte {
	return bs.bytes[i]
}

// Bytes returns a copy of the raw bytes.
func (bs ByteString) Bytes() []byte {
	r := make([]byte, len(bs.bytes))
	for i, v := range bs.bytes {
		r[i] = byte(v)
	}
	return r
}

func (bs ByteString) Equal(other ByteString) bool {
	if len(bs.bytes) != len(other.bytes) {
		return false
	}
	for i := range bs.bytes {
		if bs.bytes[i] != other.bytes[i] {
			return false
		}
	}
	return true
}

// ToHex returns the uppercase hex representation, two characters per byte.
func (bs ByteString) ToHex() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, b := range bs.bytes {
		hi, lo := b.ToHex()
		_ = buf.WriteByte(hi)
		_ = buf.WriteByte(lo)
	}
	return buf.String()
}

func (bs ByteString) String() string {
	return bs.ToHex()
}

// ToBase58 returns the Base58 (Bitcoin alphabet) representation.
func (bs ByteString) ToBase58() string {
	return base58.Encode(bs.Bytes())
}

func (bs ByteString) MarshalText() ([]byte, error) {
	return []byte(bs.ToHex()), nil
}

func (bs *ByteString) UnmarshalText(text []byte) error {
	v, err := FromHex(string(text))
	if err != nil {
		return errs.Extend(err, "failed to unmarshal ByteString")
	}
	*bs = v
	return nil
}
