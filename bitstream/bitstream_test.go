package bitstream_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
	"github.com/spacemeshos/bitbuffer/bitstream"
	"github.com/spacemeshos/bitbuffer/shared"
)

const (
	Zero = bitstream.Zero
	One  = bitstream.One
)

var (
	NewWriter = bitstream.NewWriter
	NewReader = bitstream.NewReader
	NumBits   = shared.NumBits
)

func fromString(s string) *bitbuffer.Buffer {
	buf := bitbuffer.New()
	_, _ = buf.Write([]byte(s))
	return buf
}

func TestUint64BE(t *testing.T) {
	req := require.New(t)

	buf := bitbuffer.New()
	w := NewWriter(buf)
	r := NewReader(buf)
	from := uint64(1)
	to := uint64(1 << 12)

	// Write.
	for i := from; i < to; i++ {
		err := w.WriteUint64BE(i, NumBits(i))
		req.NoError(err)
		err = w.WriteUint64BE(i, 64)
		req.NoError(err)
	}
	err := w.Flush(Zero)
	req.NoError(err)

	// Read.
	for i := from; i < to; i++ {
		num, err := r.ReadUint64BE(NumBits(i))
		req.NoError(err)
		req.Equal(i, num)
		num, err = r.ReadUint64BE(64)
		req.NoError(err)
		req.Equal(i, num)
	}
	req.Less(r.Remaining(), uint64(8))
}

func TestUint64BE_Mixed(t *testing.T) {
	req := require.New(t)

	from := uint64(1)
	to := uint64(1 << 12)

	for i := from; i < to; i++ {
		buf := bitbuffer.New(bitbuffer.WithCapacity(32))
		w := NewWriter(buf)
		r := NewReader(buf)

		// Write 3 arbitrary bits.
		req.NoError(w.WriteBit(One))
		req.NoError(w.WriteBit(Zero))
		req.NoError(w.WriteBit(One))

		// Write i.
		numBits := NumBits(i)
		req.NoError(w.WriteUint64BE(i, numBits))

		// Write the 3 MS bits of 0xFF.
		req.NoError(w.Write([]byte{0xFF}, 3))

		// Write i again.
		req.NoError(w.WriteUint64BE(i, numBits))

		// Write 3 arbitrary bits.
		req.NoError(w.WriteBit(One))
		req.NoError(w.WriteBit(Zero))
		req.NoError(w.WriteBit(One))

		req.NoError(w.Flush(Zero))

		// Read

		bit, err := r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(Zero, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)

		num, err := r.ReadUint64BE(numBits)
		req.NoError(err)
		req.Equal(i, num)

		data, err := r.Read(3)
		req.NoError(err)
		req.Len(data, 1)
		req.Equal(uint8(0xE0), data[0])

		num, err = r.ReadUint64BE(numBits)
		req.NoError(err)
		req.Equal(i, num)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(Zero, bit)

		bit, err = r.ReadBit()
		req.NoError(err)
		req.Equal(One, bit)
	}
}

func TestString(t *testing.T) {
	req := require.New(t)

	s := "a string"
	br := NewReader(fromString(s))
	out := bitbuffer.New()
	bw := NewWriter(out)

	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		req.NoError(err)
		req.NoError(bw.WriteBit(bit))
	}

	req.Equal(s, string(out.Bytes()))
}

func TestAlignment(t *testing.T) {
	req := require.New(t)

	s := "a string!" // 9 bytes, 72 bits.
	batchSize := 3   // 72 is divisible by 3.
	br := NewReader(fromString(s))
	out := bitbuffer.New()
	bw := NewWriter(out)

	for i := 0; i < batchSize; i++ {
		bit, err := br.ReadBit()
		req.NoError(err)
		req.NoError(bw.WriteBit(bit))
	}

	for {
		data, err := br.Read(uint(batchSize))
		if err == io.EOF {
			break
		}
		req.NoError(err)
		req.NoError(bw.Write(data, batchSize))
	}

	req.Equal(s, string(out.Bytes()))
	req.True(out.Aligned())
}

func TestEOF_0(t *testing.T) {
	req := require.New(t)

	_, err := NewReader(bitbuffer.New()).ReadBit()
	req.Equal(io.EOF, err)
	_, err = NewReader(bitbuffer.New()).ReadByte()
	req.Equal(io.EOF, err)
	_, err = NewReader(bitbuffer.New()).Read(5)
	req.Equal(io.EOF, err)
}

func TestEOF_1(t *testing.T) {
	req := require.New(t)

	br := NewReader(fromString("abc"))

	b, err := br.ReadByte()
	req.NoError(err)
	req.Equal(byte('a'), b)
	b, err = br.ReadByte()
	req.NoError(err)
	req.Equal(byte('b'), b)
	b, err = br.ReadByte()
	req.NoError(err)
	req.Equal(byte('c'), b)

	b, err = br.ReadByte()
	req.Equal(io.EOF, err)
	req.Equal(byte(0), b)
}

func TestEOF_Unexpected(t *testing.T) {
	req := require.New(t)

	buf := bitbuffer.New()
	req.NoError(buf.WriteBits(0x5, 3))
	br := NewReader(buf)

	_, err := br.ReadByte()
	req.Equal(io.ErrUnexpectedEOF, err)
	req.Equal(uint64(0), br.Position())

	v, err := br.ReadUint64BE(3)
	req.NoError(err)
	req.Equal(uint64(0x5), v)

	_, err = br.ReadBit()
	req.Equal(io.EOF, err)
}

func TestFlush(t *testing.T) {
	req := require.New(t)

	src := bitbuffer.New()
	req.NoError(src.WriteByte(0x0F))
	br := NewReader(src)
	out := bitbuffer.New()
	bw := NewWriter(out)

	for i := 0; i < 4; i++ {
		bit, err := br.ReadBit()
		req.NoError(err)
		req.NoError(bw.WriteBit(bit))
	}

	req.NoError(bw.Flush(One))
	req.NoError(bw.Flush(Zero))
	req.NoError(bw.WriteByte(0xAA))

	data := out.Bytes()
	req.Len(data, 2)
	req.Equal(byte(0x0F), data[0])
	req.Equal(byte(0xAA), data[1])
	req.Same(out, bw.Buffer())
}

func TestSkip(t *testing.T) {
	req := require.New(t)

	br := NewReader(fromString("ab"))
	req.NoError(br.Skip(8))
	b, err := br.ReadByte()
	req.NoError(err)
	req.Equal(byte('b'), b)
	req.Equal(uint64(0), br.Remaining())
	req.Equal(io.EOF, br.Skip(1))
	req.NoError(br.Skip(0))
}

func TestReaderFollowsWrites(t *testing.T) {
	req := require.New(t)

	buf := bitbuffer.New()
	w := NewWriter(buf)
	r := NewReader(buf)

	_, err := r.ReadBit()
	req.Equal(io.EOF, err)

	req.NoError(w.WriteBit(One))
	bit, err := r.ReadBit()
	req.NoError(err)
	req.Equal(One, bit)
}

func TestInvalidNumBits(t *testing.T) {
	req := require.New(t)

	w := NewWriter(bitbuffer.New())
	req.Error(w.Write([]byte{0xFF}, 9))
	req.Error(w.Write([]byte{0xFF}, -1))
	req.Error(w.WriteUint64BE(1, -1))
	req.ErrorIs(w.WriteUint64BE(1, 65), bitbuffer.ErrInvalidWidth)

	_, err := NewReader(fromString("abcdefghi")).ReadUint64BE(65)
	req.Error(err)
}
