package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	xdr "github.com/nullstyle/go-xdr/xdr3"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
)

// OwnerReadWriteExec is a standard owner read / write / exec file permission.
const OwnerReadWriteExec = 0o700

var ErrSnapshotNotExist = errors.New("snapshot doesn't exist")

// Snapshot is the persisted form of a buffer: its committed bytes and the number
// of bits written into the last byte.
type Snapshot struct {
	Data     []byte
	TailBits uint32
}

func NewSnapshot(buf *bitbuffer.Buffer) *Snapshot {
	return &Snapshot{
		Data:     buf.Bytes(),
		TailBits: uint32(buf.TailBits()),
	}
}

// Buffer rebuilds the buffer the snapshot was taken from.
func (s *Snapshot) Buffer(opts ...bitbuffer.OptionFunc) (*bitbuffer.Buffer, error) {
	if s.TailBits >= 8 {
		return nil, fmt.Errorf("invalid snapshot: tail bits out of range: %d", s.TailBits)
	}
	return bitbuffer.Restore(s.Data, uint8(s.TailBits), opts...)
}

func Encode(buf *bitbuffer.Buffer) ([]byte, error) {
	var w bytes.Buffer
	if _, err := xdr.Marshal(&w, NewSnapshot(buf)); err != nil {
		return nil, fmt.Errorf("serialization failure: %w", err)
	}
	return w.Bytes(), nil
}

func Decode(data []byte, opts ...bitbuffer.OptionFunc) (*bitbuffer.Buffer, error) {
	snapshot := &Snapshot{}
	if _, err := xdr.Unmarshal(bytes.NewReader(data), snapshot); err != nil {
		return nil, fmt.Errorf("deserialization failure: %w", err)
	}
	return snapshot.Buffer(opts...)
}

// Save atomically replaces filename with a snapshot of buf.
func Save(filename string, buf *bitbuffer.Buffer) error {
	data, err := Encode(buf)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filename), OwnerReadWriteExec); err != nil {
		return fmt.Errorf("dir creation failure: %w", err)
	}

	if err := atomic.WriteFile(filename, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write to disk failure: %w", err)
	}

	return nil
}

func Load(filename string, opts ...bitbuffer.OptionFunc) (*bitbuffer.Buffer, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSnapshotNotExist
		}
		return nil, fmt.Errorf("read file failure: %w", err)
	}

	return Decode(data, opts...)
}
