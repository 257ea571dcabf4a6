package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/region"
)

func bigIntFromInt64(v int64) *big.Int { return big.NewInt(v) }

func newShowCmd() *cobra.Command {
	var bitLength int
	var signed bool
	cmd := &cobra.Command{
		Use:   "show <integer>",
		Short: "Round-trip an integer through the big-integer codec and print the resulting Region's cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			value, err := strconv.ParseInt(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[0], err)
			}

			r, err := codec.FromNumericBigInteger(bigIntFromInt64(value), bitLength)
			if err != nil {
				return err
			}
			logger.Info("show: encoded %d at bit_length=%d", value, region.BitLength(r))

			fmt.Printf("bit_length=%d byte_length=%d\n", region.BitLength(r), region.ByteLength(r))
			printCells(r)

			back := codec.IntoNumericBigInteger(r, signed)
			fmt.Printf("round-trip: %s\n", back.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&bitLength, "bits", codec.DefaultLength, "bit length to encode at (default: value's natural width + 1)")
	cmd.Flags().BoolVar(&signed, "signed", true, "interpret the round-trip as a signed two's-complement integer")
	return cmd
}

func printCells(r region.Region) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"cell", "slot0", "slot1", "slot2", "slot3", "slot4", "slot5", "slot6", "slot7"})
	table.SetBorder(true)
	for i, c := range region.Cells(r) {
		row := make([]string, 0, 9)
		row = append(row, strconv.Itoa(i))
		for _, s := range c {
			row = append(row, slotString(s))
		}
		table.Append(row)
	}
	table.Render()
}

func slotString(s region.Slot) string {
	switch s {
	case region.Zero:
		return "0"
	case region.One:
		return "1"
	default:
		return "-"
	}
}
