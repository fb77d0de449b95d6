package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
	"github.com/spacemeshos/bitbuffer/persistence"
)

// source selects where a command takes its buffer from.
type source struct {
	snapshot string
	hex      string
}

func (s *source) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.snapshot, "in", "", "snapshot to read, relative to the datadir unless a path")
	cmd.Flags().StringVar(&s.hex, "hex", "", "hex encoded bytes to read instead of a snapshot")
	cmd.MarkFlagsMutuallyExclusive("in", "hex")
}

func (s *source) load() (*bitbuffer.Buffer, error) {
	opts := []bitbuffer.OptionFunc{
		bitbuffer.WithCapacity(cfg.Capacity),
		bitbuffer.WithLogger(logger),
	}

	switch {
	case s.snapshot != "":
		path := cfg.SnapshotPath(s.snapshot)
		buf, err := persistence.Load(path, opts...)
		if err != nil {
			return nil, fmt.Errorf("load snapshot %s: %w", path, err)
		}
		logger.Debug("snapshot loaded", zap.String("path", path), zap.Int("bytes", buf.Len()))
		return buf, nil
	case s.hex != "":
		data, err := hex.DecodeString(s.hex)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return bitbuffer.Restore(data, 0, opts...)
	default:
		return nil, errors.New("either --in or --hex is required")
	}
}
