package bitbuffer

import (
	"math"

	"go.uber.org/zap"
)

// maxReadBytes is the widest byte-aligned read that fits into a uint64.
const maxReadBytes = MaxWidth / bitsPerByte

// ReadBits returns the width-bit unsigned value stored at bitIndex, most-significant
// bit first. The buffer and its write cursor are left untouched.
func (b *Buffer) ReadBits(bitIndex uint64, width uint) (uint64, error) {
	if width > MaxWidth {
		return 0, &WidthError{Width: width, Max: MaxWidth}
	}
	if err := b.checkRange(bitIndex, width); err != nil {
		return 0, err
	}
	if width == 0 {
		return 0, nil
	}

	pos := bitIndex / bitsPerByte
	start := uint(bitIndex % bitsPerByte)

	var val uint64
	for {
		// Remove everything in front of the starting bit.
		cur := uint64(b.data[pos] & (0xFF >> start))
		available := bitsPerByte - start

		if width <= available {
			return val<<width | cur>>(available-width), nil
		}

		val = val<<available | cur
		width -= available
		pos++
		start = 0
	}
}

// ReadBit returns the bit at bitIndex as 0 or 1.
func (b *Buffer) ReadBit(bitIndex uint64) (uint8, error) {
	bit, err := b.ReadBits(bitIndex, 1)
	return uint8(bit), err
}

// ReadByteAt returns the byte at byteIndex.
func (b *Buffer) ReadByteAt(byteIndex uint64) (byte, error) {
	if err := b.checkByteRange(byteIndex, 1); err != nil {
		return 0, err
	}
	return b.data[byteIndex], nil
}

// ReadBytesAt returns numBytes bytes starting at byteIndex, composed as a big-endian
// unsigned integer. At most 8 bytes can be read at once.
func (b *Buffer) ReadBytesAt(byteIndex uint64, numBytes uint) (uint64, error) {
	if numBytes > maxReadBytes {
		return 0, &WidthError{Width: numBytes * bitsPerByte, Max: MaxWidth}
	}
	if err := b.checkByteRange(byteIndex, numBytes); err != nil {
		return 0, err
	}

	var val uint64
	for _, c := range b.data[byteIndex : byteIndex+uint64(numBytes)] {
		val = val<<bitsPerByte | uint64(c)
	}
	return val, nil
}

// ByteSlice returns a copy of numBytes raw bytes starting at byteIndex.
func (b *Buffer) ByteSlice(byteIndex, numBytes uint64) ([]byte, error) {
	if byteIndex > uint64(len(b.data)) || numBytes > uint64(len(b.data))-byteIndex {
		return nil, b.outOfRange(bitsOf(byteIndex), widthOf(numBytes))
	}

	out := make([]byte, numBytes)
	copy(out, b.data[byteIndex:byteIndex+numBytes])
	return out, nil
}

func (b *Buffer) checkByteRange(byteIndex uint64, numBytes uint) error {
	// Byte-granular bounds are checked first so the bit index can't overflow.
	if byteIndex > uint64(len(b.data)) || uint64(numBytes) > uint64(len(b.data))-byteIndex {
		return b.outOfRange(bitsOf(byteIndex), widthOf(uint64(numBytes)))
	}
	return nil
}

func (b *Buffer) checkRange(bitIndex uint64, width uint) error {
	committed := b.BitLen()
	if bitIndex > committed || uint64(width) > committed-bitIndex {
		return b.outOfRange(bitIndex, width)
	}
	return nil
}

func (b *Buffer) outOfRange(bitIndex uint64, width uint) error {
	err := &OutOfRangeError{
		BitIndex:  bitIndex,
		Width:     width,
		Committed: b.BitLen(),
	}
	b.logger.Debug("rejected read",
		zap.Uint64("bitIndex", err.BitIndex),
		zap.Uint("width", err.Width),
		zap.Uint64("committed", err.Committed),
	)
	return err
}

// bitsOf converts a byte count to bits, saturating instead of wrapping.
func bitsOf(numBytes uint64) uint64 {
	if numBytes > math.MaxUint64/bitsPerByte {
		return math.MaxUint64
	}
	return numBytes * bitsPerByte
}

func widthOf(numBytes uint64) uint {
	bits := bitsOf(numBytes)
	if bits > math.MaxUint {
		return math.MaxUint
	}
	return uint(bits)
}
