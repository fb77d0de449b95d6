package config

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDataDirName    = "data"
	DefaultLogLevel       = "info"

	MaxCapacity = 1 << 30
)

var (
	DefaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), "bitbuf")
	DefaultDataDir    = filepath.Join(DefaultHomeDir, DefaultDataDirName)
	DefaultConfigFile = filepath.Join(DefaultHomeDir, DefaultConfigFileName)
)

type Config struct {
	DataDir  string `mapstructure:"datadir"`
	Capacity int    `mapstructure:"capacity"`
	LogLevel string `mapstructure:"loglevel"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		Capacity: bitbuffer.DefaultCapacity,
		LogLevel: DefaultLogLevel,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Capacity < 0 {
		return fmt.Errorf("invalid `Capacity`; expected: >= 0, given: %d", cfg.Capacity)
	}

	if cfg.Capacity > MaxCapacity {
		return fmt.Errorf("invalid `Capacity`; expected: <= %d, given: %d", MaxCapacity, cfg.Capacity)
	}

	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("invalid `LogLevel`: %w", err)
	}

	if cfg.DataDir == "" {
		return fmt.Errorf("invalid `DataDir`; expected: non-empty path")
	}

	return nil
}

func (cfg *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(cfg.LogLevel)
}

// SnapshotPath resolves name relative to the data directory, unless it is already a path.
func (cfg *Config) SnapshotPath(name string) string {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		return smutil.GetCanonicalPath(name)
	}
	return filepath.Join(smutil.GetCanonicalPath(cfg.DataDir), name)
}
