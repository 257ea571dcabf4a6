// Command tidbytes wraps the region/codec/orient/suite packages with a CLI:
// running the JSON conformance suite, benchmarking the core operations, and
// inspecting codec round-trips interactively.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tidbytes/tidbytes/tlog"
)

func newLogger(cfg *Config) (tlog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return tlog.NewZap(level)
}

func main() {
	root := &cobra.Command{
		Use:   "tidbytes",
		Short: "Conformance runner, benchmark harness, and codec inspector for the tidbytes memory algebra",
	}

	root.PersistentFlags().String("config", defaultConfigFile, "path to configuration file")
	root.PersistentFlags().String("homedir", defaultHomeDir, "home directory recorded in the loaded config (no subcommand writes files there)")
	root.PersistentFlags().String("loglevel", "info", "log level (debug, info, warn, error)")
	if err := viper.BindPFlags(root.PersistentFlags()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root.AddCommand(newConformCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newShowCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
