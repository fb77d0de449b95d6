package bitstream

import (
	"fmt"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
)

// BitWriter appends bits to a bitbuffer.Buffer.
type BitWriter struct {
	buf *bitbuffer.Buffer
}

// NewWriter returns a new instance of BitWriter appending to buf.
func NewWriter(buf *bitbuffer.Buffer) *BitWriter {
	return &BitWriter{buf: buf}
}

// Buffer returns the underlying buffer.
func (bw *BitWriter) Buffer() *bitbuffer.Buffer {
	return bw.buf
}

// Write writes the first numBits of data, regardless of the alignment.
// Whole bytes are written as-is; a trailing partial byte contributes its
// most-significant bits.
func (bw *BitWriter) Write(data []byte, numBits int) error {
	if numBits < 0 || numBits > len(data)*8 {
		return fmt.Errorf("invalid `numBits`; expected: [0, %d], given: %d", len(data)*8, numBits)
	}

	whole := numBits / 8
	if _, err := bw.buf.Write(data[:whole]); err != nil {
		return err
	}

	if rem := numBits % 8; rem > 0 {
		return bw.buf.WriteBits(uint64(data[whole]>>(8-rem)), uint(rem))
	}

	return nil
}

// WriteUint64BE writes the numBits LS bits of val, in Big-Endian order, regardless of the alignment.
func (bw *BitWriter) WriteUint64BE(val uint64, numBits int) error {
	if numBits < 0 {
		return fmt.Errorf("invalid `numBits`; expected: >= 0, given: %d", numBits)
	}
	return bw.buf.WriteBits(val, uint(numBits))
}

// WriteByte writes a single byte, regardless of the alignment.
func (bw *BitWriter) WriteByte(c byte) error {
	return bw.buf.WriteByte(c)
}

// WriteBit writes a single bit.
func (bw *BitWriter) WriteBit(bit Bit) error {
	return bw.buf.WriteBits(bit.value(), 1)
}

// Flush pads the partially written byte up to the byte boundary with bit.
func (bw *BitWriter) Flush(bit Bit) error {
	for !bw.buf.Aligned() {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	return nil
}
