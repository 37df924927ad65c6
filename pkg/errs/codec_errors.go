package errs

import "fmt"

type InvalidHexCharacter struct {
	InputErrorImpl
	Char     byte
	Position int
	message  string
}

func NewInvalidHexCharacter(char byte, position int) *InvalidHexCharacter {
	return &InvalidHexCharacter{
		Char:     char,
		Position: position,
		message:  fmt.Sprintf("invalid hex character %q at position %d", char, position),
	}
}

func (a InvalidHexCharacter) Error() string {
	return a.message
}

func (a InvalidHexCharacter) Extend(message string) error {
	return &InvalidHexCharacter{Char: a.Char, Position: a.Position, message: fmtExtend(a, message)}
}

// Shift returns a copy of the error with the position moved by offset. Used to
// translate a position inside a pair into a position inside the whole input.
func (a InvalidHexCharacter) Shift(offset int) *InvalidHexCharacter {
	return NewInvalidHexCharacter(a.Char, a.Position+offset)
}

func (a InvalidHexCharacter) Is(target error) bool {
	switch target.(type) {
	case InvalidHexCharacter, *InvalidHexCharacter:
		return true
	default:
		return false
	}
}

type OddLengthInput struct {
	InputErrorImpl
	Length  int
	message string
}

func NewOddLengthInput(length int) *OddLengthInput {
	return &OddLengthInput{
		Length:  length,
		message: fmt.Sprintf("odd hex input length %d", length),
	}
}

func (a OddLengthInput) Error() string {
	return a.message
}

func (a OddLengthInput) Extend(message string) error {
	return &OddLengthInput{Length: a.Length, message: fmtExtend(a, message)}
}

func (a OddLengthInput) Is(target error) bool {
	switch target.(type) {
	case OddLengthInput, *OddLengthInput:
		return true
	default:
		return false
	}
}

type NonMultipleOfThreeLength struct {
	InputErrorImpl
	Length  int
	message string
}

func NewNonMultipleOfThreeLength(length int) *NonMultipleOfThreeLength {
	return &NonMultipleOfThreeLength{
		Length:  length,
		message: fmt.Sprintf("byte count %d is not a multiple of 3", length),
	}
}

func (a NonMultipleOfThreeLength) Error() string {
	return a.message
}

func (a NonMultipleOfThreeLength) Extend(message string) error {
	return &NonMultipleOfThreeLength{Length: a.Length, message: fmtExtend(a, message)}
}

func (a NonMultipleOfThreeLength) Is(target error) bool {
	switch target.(type) {
	case NonMultipleOfThreeLength, *NonMultipleOfThreeLength:
		return true
	default:
		return false
	}
}

type ByteOutOfRange struct {
	InputErrorImpl
	Value   int
	message string
}

func NewByteOutOfRange(value int) *ByteOutOfRange {
	return &ByteOutOfRange{
		Value:   value,
		message: fmt.Sprintf("value %d is out of byte range [0, 255]", value),
	}
}

func (a ByteOutOfRange) Error() string {
	return a.message
}

func (a ByteOutOfRange) Extend(message string) error {
	return &ByteOutOfRange{Value: a.Value, message: fmtExtend(a, message)}
}

func (a ByteOutOfRange) Is(target error) bool {
	switch target.(type) {
	case ByteOutOfRange, *ByteOutOfRange:
		return true
	default:
		return false
	}
}
