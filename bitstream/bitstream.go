// Package bitstream provides sequential bit-granularity access on top of a
// bitbuffer.Buffer, following the MSB pattern, where most-significant bits are
// written/read first.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

func (b Bit) value() uint64 {
	if b {
		return 1
	}
	return 0
}
