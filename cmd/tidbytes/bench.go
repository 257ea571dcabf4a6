package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tidbytes/tidbytes/codec"
	"github.com/tidbytes/tidbytes/region"
)

func newBenchCmd() *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the core Region operations across a range of bit lengths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logger.Info("bench: %d iterations per case", iterations)

			rows := runBenchCases(genBenchCases(), iterations)
			reportBench(rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 10000, "iterations per case")
	return cmd
}

// benchCase is a single bit length to exercise, playing the role that a
// shared.Config did for cmd/bench/bench.go's genTestCases.
type benchCase struct {
	bits int
}

func genBenchCases() []benchCase {
	cases := make([]benchCase, 0)
	for _, bits := range []int{1, 7, 8, 9, 64, 1024, 1 << 16, 1 << 20} {
		cases = append(cases, benchCase{bits: bits})
	}
	return cases
}

func runBenchCases(cases []benchCase, iterations int) [][]string {
	rows := make([][]string, 0, len(cases))
	for _, c := range cases {
		bytes := make([]byte, (c.bits+7)/8)
		for i := range bytes {
			bytes[i] = byte(i)
		}
		r, err := codec.FromBytes(bytes)
		if err != nil {
			panic(err)
		}
		r, err = region.EnsureBitLength(r, c.bits, false)
		if err != nil {
			panic(err)
		}

		tReverse := timeIt(iterations, func() { region.Reverse(r) })
		tReverseBits := timeIt(iterations, func() { region.ReverseBits(r) })
		tReverseBytes := timeIt(iterations, func() { region.ReverseBytes(r) })
		tGetBits := timeIt(iterations, func() { _, _ = region.GetBits(r, 0, c.bits) })

		rows = append(rows, []string{
			bytefmt.ByteSize(uint64(c.bits / 8)),
			strconv.Itoa(c.bits),
			tReverse.String(),
			tReverseBits.String(),
			tReverseBytes.String(),
			tGetBits.String(),
		})
	}
	return rows
}

func timeIt(iterations int, f func()) time.Duration {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		f()
	}
	return time.Since(start) / time.Duration(iterations)
}

func reportBench(rows [][]string) {
	fmt.Println("\n\nBENCHMARKS: per-call average over iterations")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"bytes", "bits", "reverse", "reverse-bits", "reverse-bytes", "get-bits"})
	table.SetBorder(true)
	table.AppendBulk(rows)
	table.Render()
}
