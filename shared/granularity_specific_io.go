package shared

import (
	"io"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
	"github.com/spacemeshos/bitbuffer/bitstream"
)

// GranSpecificReader provides sequential access to fixed-size items stored in a
// bitbuffer.Buffer, where bit-granular and byte-granular sizes are supported via
// a specialized code path.
type GranSpecificReader struct {
	ReadNext       func() ([]byte, error)
	ReadNextUintBE func() (uint64, error)
}

func NewGranSpecificReader(buf *bitbuffer.Buffer, itemBitSize uint) (*GranSpecificReader, error) {
	if itemBitSize == 0 {
		return nil, ErrZeroItemSize
	}

	gsReader := new(GranSpecificReader)
	if itemBitSize%8 == 0 {
		// Byte-granular reader is copying whole bytes out of the buffer.
		itemSize := uint64(itemBitSize / 8)
		var idx uint64
		gsReader.ReadNext = func() ([]byte, error) {
			remaining := uint64(buf.Len()) - idx
			switch {
			case remaining == 0:
				return nil, io.EOF
			case remaining < itemSize:
				return nil, io.ErrUnexpectedEOF
			}
			b, err := buf.ByteSlice(idx, itemSize)
			if err != nil {
				return nil, err
			}
			idx += itemSize
			return b, nil
		}
		gsReader.ReadNextUintBE = func() (uint64, error) {
			if itemSize > 8 {
				return 0, ErrItemTooWide
			}
			b, err := gsReader.ReadNext()
			if err != nil {
				return 0, err
			}
			return UintBE(b), nil
		}
	} else {
		// Bit-granular reader is using bitstream as a wrapper for the buffer.
		br := bitstream.NewReader(buf)
		gsReader.ReadNext = func() ([]byte, error) {
			return br.Read(itemBitSize)
		}
		gsReader.ReadNextUintBE = func() (uint64, error) {
			if itemBitSize > bitbuffer.MaxWidth {
				return 0, ErrItemTooWide
			}
			return br.ReadUint64BE(int(itemBitSize))
		}
	}

	return gsReader, nil
}

// GranSpecificWriter provides a wrapper for bitbuffer.Buffer to append fixed-size
// items, where bit-granular and byte-granular sizes are supported via a specialized
// code path.
type GranSpecificWriter struct {
	Write       func([]byte) error
	WriteUintBE func(uint64) error
	Flush       func() error
}

func NewGranSpecificWriter(buf *bitbuffer.Buffer, itemBitSize uint) (*GranSpecificWriter, error) {
	if itemBitSize == 0 {
		return nil, ErrZeroItemSize
	}

	gsWriter := new(GranSpecificWriter)
	if itemBitSize%8 == 0 {
		// Byte-granular writer is using the buffer directly.
		itemSize := int(itemBitSize / 8)
		gsWriter.Write = func(b []byte) error {
			if len(b) != itemSize {
				return ItemSizeError{Expected: itemSize, Given: len(b)}
			}
			_, err := buf.Write(b)
			return err
		}
		gsWriter.WriteUintBE = func(v uint64) error {
			if itemSize > 8 {
				return ErrItemTooWide
			}
			b := make([]byte, itemSize)
			PutUintBE(b, v)
			return gsWriter.Write(b)
		}
		gsWriter.Flush = func() error { return nil }
	} else {
		// Bit-granular writer is using bitstream as a wrapper for the buffer.
		bw := bitstream.NewWriter(buf)
		gsWriter.Write = func(b []byte) error {
			return bw.Write(b, int(itemBitSize))
		}
		gsWriter.WriteUintBE = func(v uint64) error {
			if itemBitSize > bitbuffer.MaxWidth {
				return ErrItemTooWide
			}
			return bw.WriteUint64BE(v, int(itemBitSize))
		}
		gsWriter.Flush = func() error {
			return bw.Flush(bitstream.Zero)
		}
	}

	return gsWriter, nil
}
