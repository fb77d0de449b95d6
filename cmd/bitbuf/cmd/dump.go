package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bitbuffer/bitbuffer"
)

var dumpSource source

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print every byte of a buffer with its bits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := dumpSource.load()
		if err != nil {
			return err
		}
		return dump(cmd.OutOrStdout(), buf)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpSource.addFlags(dumpCmd)
}

func dump(w io.Writer, buf *bitbuffer.Buffer) error {
	rows, err := dumpRows(buf)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "size: %s, bits written: %d\n", bytefmt.ByteSize(uint64(buf.Len())), buf.WrittenBits())

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"byte", "bit", "hex", "bits"})
	table.SetBorder(true)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// dumpRows walks the buffer bit by bit, one row per byte.
func dumpRows(buf *bitbuffer.Buffer) ([][]string, error) {
	rows := make([][]string, 0, buf.Len())

	var bits strings.Builder
	for c, end := buf.Begin(), buf.End(); !c.Equal(end); c.Next() {
		bit, err := c.Bit()
		if err != nil {
			return nil, err
		}
		bits.WriteByte('0' + bit)

		if bits.Len() == 8 {
			byteIndex := c.Index() / 8
			v, err := buf.ReadByteAt(byteIndex)
			if err != nil {
				return nil, err
			}
			rows = append(rows, []string{
				strconv.FormatUint(byteIndex, 10),
				strconv.FormatUint(byteIndex*8, 10),
				fmt.Sprintf("%02x", v),
				bits.String(),
			})
			bits.Reset()
		}
	}

	return rows, nil
}
