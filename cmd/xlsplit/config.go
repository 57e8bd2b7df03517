package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "XLSPLIT"

// Config defines the CLI configuration. Values come from flags, XLSPLIT_*
// environment variables and an optional config file, in that order of precedence.
type Config struct {
	OutputDir   string `mapstructure:"output-dir"`
	RowsPerFile int    `mapstructure:"rows"`
	HeaderRows  int    `mapstructure:"header-rows"`

	// Report is the JSON manifest path; empty disables the manifest.
	Report string `mapstructure:"report"`
	Pretty bool   `mapstructure:"pretty"`

	LoggerLevel string `mapstructure:"log-level"`
	Verbose     bool   `mapstructure:"verbose"`
	Quiet       bool   `mapstructure:"quiet"`
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	if configPath := v.GetString("config"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
