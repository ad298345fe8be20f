package base64

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every error caused by malformed encoded input.
	ErrInvalidInput = errors.New("invalid base64 input")

	// ErrAllocation matches errors caused by an output that cannot be sized.
	ErrAllocation = errors.New("base64 output cannot be allocated")
)

// ErrInvalidCharacter is returned when decoding meets a byte that is not
// in the alphabet, or a padding character in a position where it cannot
// appear.
type ErrInvalidCharacter struct {
	Char   byte
	Offset int
}

func (e *ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("base64: illegal character %q at offset %d", e.Char, e.Offset)
}

func (e *ErrInvalidCharacter) Is(target error) bool {
	return target == ErrInvalidInput
}

func NewInvalidCharacterError(c byte, offset int) *ErrInvalidCharacter {
	return &ErrInvalidCharacter{Char: c, Offset: offset}
}

// ErrMalformedLength is returned when the encoded input length is not a
// multiple of 4.
type ErrMalformedLength struct {
	Length int
}

func (e *ErrMalformedLength) Error() string {
	return fmt.Sprintf("base64: input length %d is not a multiple of 4", e.Length)
}

func (e *ErrMalformedLength) Is(target error) bool {
	return target == ErrInvalidInput
}

func NewMalformedLengthError(length int) *ErrMalformedLength {
	return &ErrMalformedLength{Length: length}
}

// ErrTooLarge is returned when the encoded form of an input would not fit
// in a single buffer.
type ErrTooLarge struct {
	Length int
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("base64: input of %d bytes is too large to encode", e.Length)
}

func (e *ErrTooLarge) Is(target error) bool {
	return target == ErrAllocation
}

func NewTooLargeError(length int) *ErrTooLarge {
	return &ErrTooLarge{Length: length}
}
