package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuffer/config"
	"github.com/spacemeshos/bitbuffer/shared"
)

var (
	Version string
	Commit  string

	vip = viper.New()

	cfgFile     string
	printConfig bool

	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitbuf",
	Short: "Pack and inspect bit-granular buffers",
	Long: `bitbuf packs values of arbitrary bit widths into a contiguous byte buffer,
reads them back from arbitrary bit offsets and stores buffers as snapshots.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(vip, cfgFile)
		if err != nil {
			return err
		}

		level, err := cfg.Level()
		if err != nil {
			return err
		}
		logger, err = shared.NewLogger(level)
		if err != nil {
			return fmt.Errorf("failed to initialize zap logger: %w", err)
		}

		if printConfig {
			spew.Fdump(cmd.ErrOrStderr(), cfg)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&cfgFile, "config", "c", "", fmt.Sprintf("path to configuration file (default %s)", config.DefaultConfigFile))
	flags.BoolVar(&printConfig, "printConfig", false, "print the used config")
	flags.String("datadir", defaults.DataDir, "directory snapshots are resolved against")
	flags.Int("capacity", defaults.Capacity, "buffer preallocation hint, in bytes")
	flags.String("loglevel", defaults.LogLevel, "log level (debug, info, warn, error, dpanic, panic, fatal)")

	for _, name := range []string{"datadir", "capacity", "loglevel"} {
		if err := vip.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}
