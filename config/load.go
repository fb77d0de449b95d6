package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/viper"
)

// Load builds the config from defaults, the config file and whatever flags are
// bound to vip, in increasing priority. A missing default config file is not an error.
func Load(vip *viper.Viper, fileLocation string) (*Config, error) {
	if err := loadConfigFile(vip, fileLocation); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.DataDir = smutil.GetCanonicalPath(cfg.DataDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadConfigFile(vip *viper.Viper, fileLocation string) error {
	explicit := fileLocation != ""
	if !explicit {
		fileLocation = DefaultConfigFile
	}

	vip.SetConfigFile(smutil.GetCanonicalPath(fileLocation))
	err := vip.ReadInConfig()
	switch {
	case err == nil:
		return nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("failed to read config file: %w", err)
	}
}
