package bitbuffer

import (
	"encoding/binary"
)

// WriteBits appends the low width bits of value, most-significant bit first, at the
// write cursor. Bits of value above width are ignored. A zero width is a no-op.
func (b *Buffer) WriteBits(value uint64, width uint) error {
	if width > MaxWidth {
		return &WidthError{Width: width, Max: MaxWidth}
	}
	if width < MaxWidth {
		value &= 1<<width - 1
	}

	b.writeBits(value, width)
	return nil
}

// writeBits expects value to have no bits set above width.
func (b *Buffer) writeBits(value uint64, width uint) {
	for width > 0 {
		if b.bitOffset == 0 {
			b.data = append(b.data, 0)
		}

		// Not enough room in the tail byte; fill it and carry the rest over.
		if uint(b.bitOffset)+width > bitsPerByte {
			remainder := uint(b.bitOffset) + width - bitsPerByte

			b.data[b.pos] |= byte(value >> remainder)
			b.bitOffset = 0
			b.pos++

			value &= 1<<remainder - 1
			width = remainder
			continue
		}

		offset := bitsPerByte - uint(b.bitOffset) - width
		b.data[b.pos] |= byte(value << offset)
		b.bitOffset += uint8(width)

		if b.bitOffset == bitsPerByte {
			b.bitOffset = 0
			b.pos++
		}
		return
	}
}

// writeUint writes the size low-order bytes of v in big-endian order.
// On a byte boundary the bytes are appended directly.
func (b *Buffer) writeUint(v uint64, size int) {
	if b.bitOffset != 0 {
		width := uint(size) * bitsPerByte
		if width < MaxWidth {
			v &= 1<<width - 1
		}
		b.writeBits(v, width)
		return
	}

	switch size {
	case 1:
		b.data = append(b.data, byte(v))
	case 2:
		b.data = binary.BigEndian.AppendUint16(b.data, uint16(v))
	case 4:
		b.data = binary.BigEndian.AppendUint32(b.data, uint32(v))
	case 8:
		b.data = binary.BigEndian.AppendUint64(b.data, v)
	}
	b.pos += size
}

// Write appends p as whole bytes at the write cursor. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	if b.bitOffset == 0 {
		b.data = append(b.data, p...)
		b.pos += len(p)
		return len(p), nil
	}

	for _, c := range p {
		b.writeBits(uint64(c), bitsPerByte)
	}
	return len(p), nil
}

// WriteByte appends 8 bits. The error is always nil.
func (b *Buffer) WriteByte(c byte) error {
	b.writeUint(uint64(c), 1)
	return nil
}

// WriteChar appends the two's complement representation of c in 8 bits.
func (b *Buffer) WriteChar(c int8) error {
	b.writeUint(uint64(uint8(c)), 1)
	return nil
}

// WriteBool appends a full byte holding 1 or 0.
func (b *Buffer) WriteBool(v bool) error {
	var c uint64
	if v {
		c = 1
	}
	b.writeUint(c, 1)
	return nil
}

// WriteShort appends the two's complement representation of v in 16 bits.
func (b *Buffer) WriteShort(v int16) error {
	b.writeUint(uint64(uint16(v)), 2)
	return nil
}

func (b *Buffer) WriteInt(v uint32) error {
	b.writeUint(uint64(v), 4)
	return nil
}

func (b *Buffer) WriteLong(v uint64) error {
	b.writeUint(v, 8)
	return nil
}
