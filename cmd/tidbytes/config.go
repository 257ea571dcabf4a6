package main

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfigFileName = "config.toml"

var (
	defaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), "tidbytes")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFileName)
)

// Config is the CLI's own configuration, layered config-file < flags
// (environment variables are not read), the way cmd/server/config.go wires a PoST server's ServerConfig.
type Config struct {
	HomeDir  string `mapstructure:"homedir"`
	LogLevel string `mapstructure:"loglevel"`
}

func defaultConfig() *Config {
	return &Config{
		HomeDir:  defaultHomeDir,
		LogLevel: "info",
	}
}

func loadConfig(cmd *cobra.Command) (*Config, error) {
	vip := viper.New()

	fileLocation := smutil.GetCanonicalPath(viper.GetString("config"))
	if fileLocation == "" {
		fileLocation = defaultConfigFile
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		if fileLocation != defaultConfigFile {
			return nil, fmt.Errorf("failed to read config file %s: %w", fileLocation, err)
		}
		// No config file at the default location: flags and defaults alone
		// are enough to run.
	}

	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := defaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.HomeDir = smutil.GetCanonicalPath(cfg.HomeDir)
	return cfg, nil
}
