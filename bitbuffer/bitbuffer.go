// Package bitbuffer provides an append-only, randomly readable byte buffer that packs
// values of arbitrary bit widths contiguously, most-significant bit first, with no
// padding between fields.
//
// Example:
//
//	bb := bitbuffer.New()
//	_ = bb.WriteBits(1, 1)
//	_ = bb.WriteBits(2, 2)
//	_ = bb.WriteBits(0, 1)
//	_ = bb.WriteBits(10, 4)
//	_ = bb.WriteInt(100)
//
//	bb.ReadBit(0)        // 1
//	bb.ReadBits(1, 2)    // 2
//	bb.ReadBits(4, 4)    // 10
//	bb.ReadBytesAt(1, 4) // 100
//
// A Buffer is not safe for concurrent use while it is being written.
package bitbuffer

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const bitsPerByte = 8

// MaxWidth is the widest value a single WriteBits or ReadBits call can carry.
const MaxWidth = 64

// Buffer is a bit-packed byte store with an append-only write cursor.
type Buffer struct {
	data []byte

	// pos is the index of the byte that is not yet fully written.
	pos int
	// bitOffset is the number of bits already written into data[pos].
	// Zero means data[pos] hasn't been appended yet.
	bitOffset uint8

	logger *zap.Logger
}

// New returns an empty buffer, preallocating DefaultCapacity bytes unless told otherwise.
func New(opts ...OptionFunc) *Buffer {
	options := defaultOpts()
	for _, opt := range opts {
		opt(options)
	}

	return &Buffer{
		data:   make([]byte, 0, options.capacity),
		logger: options.logger,
	}
}

// Restore rebuilds a buffer from previously committed bytes. tailBits is the number
// of bits written into the last byte, or 0 if the last byte is sealed. Bits of the
// last byte past tailBits are cleared.
func Restore(data []byte, tailBits uint8, opts ...OptionFunc) (*Buffer, error) {
	if tailBits >= bitsPerByte {
		return nil, fmt.Errorf("invalid `tailBits`; expected: < %d, given: %d", bitsPerByte, tailBits)
	}
	if tailBits > 0 && len(data) == 0 {
		return nil, fmt.Errorf("invalid `tailBits`; expected: 0 for empty data, given: %d", tailBits)
	}

	b := New(opts...)
	b.data = append(b.data, data...)
	b.pos = len(data)
	if tailBits > 0 {
		b.pos--
		b.bitOffset = tailBits
		// Later writes only OR into the tail, so its unused bits must be clear.
		b.data[b.pos] &^= 0xFF >> tailBits
	}

	return b, nil
}

// Bytes returns a copy of the committed bytes.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Len returns the number of committed bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// BitLen returns the number of committed bits, the upper bound for reads.
func (b *Buffer) BitLen() uint64 {
	return uint64(len(b.data)) * bitsPerByte
}

// WrittenBits returns the number of bits written so far. It differs from BitLen
// only while the tail byte is partially filled.
func (b *Buffer) WrittenBits() uint64 {
	return uint64(b.pos)*bitsPerByte + uint64(b.bitOffset)
}

// TailBits returns the number of bits written into the partially filled tail byte.
func (b *Buffer) TailBits() uint8 {
	return b.bitOffset
}

// Aligned reports whether the write cursor sits on a byte boundary.
func (b *Buffer) Aligned() bool {
	return b.bitOffset == 0
}

// Clone returns a deep copy sharing no state with b.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		data:      b.Bytes(),
		pos:       b.pos,
		bitOffset: b.bitOffset,
		logger:    b.logger,
	}
}

// Equal reports whether both buffers hold the same bytes. Cursor state is ignored.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(b.data, other.data)
}

// WriteTo writes the committed bytes, including a partially filled tail, to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	return int64(n), err
}

func (b *Buffer) String() string {
	return hex.EncodeToString(b.data)
}
