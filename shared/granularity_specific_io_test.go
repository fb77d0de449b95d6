package shared_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
	"github.com/spacemeshos/bitbuffer/shared"
)

var (
	NewGranSpecificReader = shared.NewGranSpecificReader
	NewGranSpecificWriter = shared.NewGranSpecificWriter
)

func TestGranSpecificReader_BitGranular(t *testing.T) {
	req := require.New(t)

	// Write one byte ([0b11111111])
	buf := bitbuffer.New()
	req.NoError(buf.WriteByte(0xFF))

	// Read one bit.
	gsReader, err := NewGranSpecificReader(buf, uint(1))
	req.NoError(err)
	label, err := gsReader.ReadNext()
	req.NoError(err)
	req.Len(label, 1)
	req.Equal(byte(0x80), label[0])

	v, err := gsReader.ReadNextUintBE()
	req.NoError(err)
	req.Equal(uint64(1), v)
}

func TestGranSpecificReader_ByteGranular(t *testing.T) {
	req := require.New(t)

	// Write two bytes ([0b11111111, 0b11111111])
	buf := bitbuffer.New()
	_, err := buf.Write([]byte{0xFF, 0xFF})
	req.NoError(err)

	// Read 16 bits.
	gsReader, err := NewGranSpecificReader(buf, uint(16))
	req.NoError(err)
	label, err := gsReader.ReadNext()
	req.NoError(err)
	req.Len(label, 2)
	req.Equal([]byte{0xFF, 0xFF}, label)

	_, err = gsReader.ReadNext()
	req.Equal(io.EOF, err)
}

func TestGranSpecificWriter_RoundTrip(t *testing.T) {
	for _, itemBitSize := range []uint{1, 3, 8, 12, 16, 33, 64} {
		req := require.New(t)

		buf := bitbuffer.New()
		gsWriter, err := NewGranSpecificWriter(buf, itemBitSize)
		req.NoError(err)

		mask := uint64(1)<<itemBitSize - 1
		if itemBitSize == 64 {
			mask = ^uint64(0)
		}
		for i := uint64(0); i < 100; i++ {
			req.NoError(gsWriter.WriteUintBE((i * 0x9E3779B97F4A7C15) & mask))
		}
		req.NoError(gsWriter.Flush())
		req.True(buf.Aligned())

		gsReader, err := NewGranSpecificReader(buf, itemBitSize)
		req.NoError(err)
		for i := uint64(0); i < 100; i++ {
			v, err := gsReader.ReadNextUintBE()
			req.NoError(err)
			req.Equal((i*0x9E3779B97F4A7C15)&mask, v, "itemBitSize: %d, item: %d", itemBitSize, i)
		}
	}
}

func TestGranSpecificWriter_ByteGranularSize(t *testing.T) {
	req := require.New(t)

	gsWriter, err := NewGranSpecificWriter(bitbuffer.New(), 16)
	req.NoError(err)
	err = gsWriter.Write([]byte{0x01})
	req.Equal(shared.ItemSizeError{Expected: 2, Given: 1}, err)
}

func TestGranSpecific_InvalidSize(t *testing.T) {
	req := require.New(t)

	_, err := NewGranSpecificWriter(bitbuffer.New(), 0)
	req.ErrorIs(err, shared.ErrZeroItemSize)
	_, err = NewGranSpecificReader(bitbuffer.New(), 0)
	req.ErrorIs(err, shared.ErrZeroItemSize)

	gsWriter, err := NewGranSpecificWriter(bitbuffer.New(), 72)
	req.NoError(err)
	req.ErrorIs(gsWriter.WriteUintBE(1), shared.ErrItemTooWide)

	gsWriter, err = NewGranSpecificWriter(bitbuffer.New(), 65)
	req.NoError(err)
	req.ErrorIs(gsWriter.WriteUintBE(1), shared.ErrItemTooWide)
}
