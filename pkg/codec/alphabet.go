// Package codec converts raw byte sequences to and from their printable
// presentations. Bytes are always kept raw; hex, Base64 and Base58 are
// output formats only.
package codec

const (
	HexAlphabet    = "0123456789ABCDEF"
	Base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	Base64Padding = '='

	hexPairSize     = 2
	base64BlockSize = 3
	base64CharsSize = 4
)

// hexDecodeTable holds nibble value + 1 for every valid hex character, zero
// marks a character outside the alphabet.
var hexDecodeTable = func() [256]byte {
	var t [256]byte
	for i := 0; i < len(HexAlphabet); i++ {
		c := HexAlphabet[i]
		t[c] = byte(i) + 1
		if c >= 'A' && c <= 'F' {
			t[c+('a'-'A')] = byte(i) + 1
		}
	}
	return t
}()

// nibble returns the value of hex character c, or false if c is not a hex
// character. Lowercase letters are accepted.
func nibble(c byte) (byte, bool) {
	v := hexDecodeTable[c]
	if v == 0 {
		return 0, false
	}
	return v - 1, true
}
