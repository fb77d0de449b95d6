package bitstream

import (
	"fmt"
	"io"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
)

// BitReader reads bits sequentially from a bitbuffer.Buffer, up to the last
// written bit. Reads never consume anything on failure.
type BitReader struct {
	buf *bitbuffer.Buffer
	pos uint64
}

// NewReader returns a new instance of BitReader positioned at the first bit of buf.
func NewReader(buf *bitbuffer.Buffer) *BitReader {
	return &BitReader{buf: buf}
}

// Position returns the absolute bit index of the next read.
func (br *BitReader) Position() uint64 {
	return br.pos
}

// Remaining returns the number of written bits not consumed yet.
func (br *BitReader) Remaining() uint64 {
	written := br.buf.WrittenBits()
	if br.pos >= written {
		return 0
	}
	return written - br.pos
}

func (br *BitReader) ensure(numBits uint64) error {
	remaining := br.Remaining()
	switch {
	case numBits == 0:
		return nil
	case remaining == 0:
		return io.EOF
	case remaining < numBits:
		return io.ErrUnexpectedEOF
	}
	return nil
}

// Read reads the next numBits, regardless of the alignment. A trailing partial
// byte holds the bits in its most-significant positions.
func (br *BitReader) Read(numBits uint) ([]byte, error) {
	if err := br.ensure(uint64(numBits)); err != nil {
		return nil, err
	}

	size := numBits / 8
	if numBits%8 > 0 {
		size++
	}

	data := make([]byte, size)
	var idx int

	for numBits >= 8 {
		byt, err := br.ReadByte()
		if err != nil {
			return nil, err
		}

		data[idx] = byt
		idx++
		numBits -= 8
	}

	if numBits > 0 {
		v, err := br.buf.ReadBits(br.pos, numBits)
		if err != nil {
			return nil, err
		}
		br.pos += uint64(numBits)
		data[idx] = byte(v << (8 - numBits))
	}

	return data, nil
}

// ReadUint64BE reads the next numBits as uint64 in Big-Endian order, regardless of the alignment.
func (br *BitReader) ReadUint64BE(numBits int) (uint64, error) {
	if numBits < 0 || numBits > bitbuffer.MaxWidth {
		return 0, fmt.Errorf("invalid `numBits`; expected: [0, %d], given: %d", bitbuffer.MaxWidth, numBits)
	}
	if err := br.ensure(uint64(numBits)); err != nil {
		return 0, err
	}

	val, err := br.buf.ReadBits(br.pos, uint(numBits))
	if err != nil {
		return 0, err
	}
	br.pos += uint64(numBits)

	return val, nil
}

// ReadByte reads the next 8 bits, regardless of the alignment.
func (br *BitReader) ReadByte() (byte, error) {
	val, err := br.ReadUint64BE(8)
	return byte(val), err
}

// ReadBit reads the next single bit.
func (br *BitReader) ReadBit() (Bit, error) {
	val, err := br.ReadUint64BE(1)
	if err != nil {
		return Zero, err
	}
	return Bit(val == 1), nil
}

// Skip discards the next numBits.
func (br *BitReader) Skip(numBits uint64) error {
	if err := br.ensure(numBits); err != nil {
		return err
	}
	br.pos += numBits
	return nil
}
