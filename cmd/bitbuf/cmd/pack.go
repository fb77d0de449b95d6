package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
	"github.com/spacemeshos/bitbuffer/internal/fields"
	"github.com/spacemeshos/bitbuffer/persistence"
)

var packOut string

// packCmd represents the pack command.
var packCmd = &cobra.Command{
	Use:   "pack field...",
	Short: "Pack fields into a buffer",
	Long: `Pack writes each field at the current write cursor, with no padding in between,
and prints the resulting bytes in hex.

Fields are value:width pairs (e.g. 10:4), bare values (minimal width), or typed
values: u8:, i8:, bool:, i16:, u32:, u64:.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := fields.ParseAll(args)
		if err != nil {
			return err
		}

		buf := bitbuffer.New(bitbuffer.WithCapacity(cfg.Capacity), bitbuffer.WithLogger(logger))
		for _, f := range parsed {
			offset := buf.WrittenBits()
			if err := f.Write(buf); err != nil {
				return fmt.Errorf("write field %v: %w", f, err)
			}
			logger.Debug("field written", zap.Stringer("field", f), zap.Uint64("offset", offset))
		}

		fmt.Fprintln(cmd.OutOrStdout(), buf.String())
		fmt.Fprintf(cmd.OutOrStdout(), "bits written: %d, bytes: %d\n", buf.WrittenBits(), buf.Len())

		if packOut != "" {
			path := cfg.SnapshotPath(packOut)
			if err := persistence.Save(path, buf); err != nil {
				return err
			}
			logger.Info("snapshot saved", zap.String("path", path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVarP(&packOut, "out", "o", "", "save the buffer as a snapshot, relative to the datadir unless a path")
}
