package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
)

var (
	readSource source
	readOffset uint64
	readWidth  uint
	readBytes  bool
)

// readCmd represents the read command.
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read a value at an arbitrary bit offset",
	Long: `Read prints the unsigned value stored at --offset, --width bits wide.
With --bytes both are counted in bytes instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := readSource.load()
		if err != nil {
			return err
		}

		var v uint64
		if readBytes {
			v, err = buf.ReadBytesAt(readOffset, readWidth)
		} else {
			v, err = buf.ReadBits(readOffset, readWidth)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d (%#x)\n", v, v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)

	readSource.addFlags(readCmd)
	readCmd.Flags().Uint64Var(&readOffset, "offset", 0, "absolute offset to read from")
	readCmd.Flags().UintVar(&readWidth, "width", 1, fmt.Sprintf("number of bits to read, at most %d", bitbuffer.MaxWidth))
	readCmd.Flags().BoolVar(&readBytes, "bytes", false, "count offset and width in bytes")
}
