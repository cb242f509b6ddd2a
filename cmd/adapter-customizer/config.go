package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the CLI configuration.
type Config struct {
	Tag      string   `mapstructure:"tag"`
	Strict   bool     `mapstructure:"strict"`
	Packages []string `mapstructure:"packages"`
	Dir      string   `mapstructure:"dir"`
	Format   string   `mapstructure:"format"`
	Verbose  bool     `mapstructure:"verbose"`
}

// loadConfig merges defaults, adapter-customizer.yaml, ADAPTER_CUSTOMIZER_*
// environment variables and flags, in increasing priority.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetDefault("strict", false)
	v.SetDefault("format", "yaml")

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("adapter-customizer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ADAPTER_CUSTOMIZER")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	cfg.Format = strings.ToLower(cfg.Format)

	switch cfg.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("unsupported output format %q (want yaml or json)", cfg.Format)
	}

	return nil
}

func newLogger(cfg *Config) (*zap.Logger, error) {
	if !cfg.Verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}
