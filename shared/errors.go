package shared

import (
	"errors"
	"fmt"
)

var (
	ErrZeroItemSize = errors.New("item size must be positive")
	ErrItemTooWide  = errors.New("item is wider than 64 bits")
)

type ItemSizeError struct {
	Expected int
	Given    int
}

func (err ItemSizeError) Error() string {
	return fmt.Sprintf("invalid item size; expected: %v bytes, given: %v bytes", err.Expected, err.Given)
}
