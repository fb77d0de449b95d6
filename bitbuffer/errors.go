package bitbuffer

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("out of range")
	ErrInvalidWidth = errors.New("invalid width")
)

// OutOfRangeError is returned when a read requests bits past the committed length.
type OutOfRangeError struct {
	BitIndex  uint64
	Width     uint
	Committed uint64
}

func (err *OutOfRangeError) Error() string {
	return fmt.Sprintf("read of %d bits at bit %d exceeds committed length of %d bits",
		err.Width, err.BitIndex, err.Committed)
}

func (err *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// WidthError is returned when a width exceeds what a single operation supports.
type WidthError struct {
	Width uint
	Max   uint
}

func (err *WidthError) Error() string {
	return fmt.Sprintf("invalid width; expected: <= %d, given: %d", err.Max, err.Width)
}

func (err *WidthError) Is(target error) bool {
	return target == ErrInvalidWidth
}
