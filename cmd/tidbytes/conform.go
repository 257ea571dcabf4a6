package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tidbytes/tidbytes/suite"
)

func newConformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conform <suite.json>",
		Short: "Run a JSON conformance suite against this implementation",
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

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open suite file: %w", err)
			}
			defer f.Close()

			s, err := suite.Load(f)
			if err != nil {
				return fmt.Errorf("load suite: %w", err)
			}
			logger.Info("loaded suite %s with %d test cases (version %s)", args[0], len(s.Tests), s.Version)

			report := suite.Run(s)
			printConformReport(report)

			if report.Failed() > 0 {
				logger.Warning("conformance run: %d of %d cases failed", report.Failed(), len(report.Results))
				return fmt.Errorf("%d of %d cases failed", report.Failed(), len(report.Results))
			}
			return nil
		},
	}
	return cmd
}

func printConformReport(report suite.Report) {
	fmt.Printf("\nCONFORMANCE: %d passed, %d failed (of %d)\n\n", report.Passed(), report.Failed(), len(report.Results))

	tags, passed, failed := report.ByTag()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"tag", "passed", "failed"})
	table.SetBorder(true)
	for _, tag := range tags {
		table.Append([]string{tag, fmt.Sprint(passed[tag]), fmt.Sprint(failed[tag])})
	}
	table.Render()

	for _, res := range report.Results {
		if res.Passed {
			continue
		}
		if res.Err != nil {
			fmt.Printf("FAIL [%s] %s: error: %v\n", res.Tag, res.Op, res.Err)
		} else {
			fmt.Printf("FAIL [%s] %s: want %v, got %v\n", res.Tag, res.Op, res.Wanted, res.Got)
		}
	}
}
