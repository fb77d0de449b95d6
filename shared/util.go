package shared

import (
	"math/bits"
)

// NumBits returns the minimal number of bits needed to represent v. Zero takes one bit.
func NumBits(v uint64) int {
	if v == 0 {
		return 1
	}
	return bits.Len64(v)
}

// UintBE decodes b as a Big-Endian unsigned integer. Only the last 8 bytes are significant.
func UintBE(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// PutUintBE encodes v into b in Big-Endian order, truncating the MS bytes if b is shorter than 8.
func PutUintBE(b []byte, v uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}
