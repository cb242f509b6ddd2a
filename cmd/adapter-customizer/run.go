package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"adapter-customizer/internal/analyze"
	"adapter-customizer/internal/bindings"
	"adapter-customizer/internal/customize"
	"adapter-customizer/internal/diagnostic"
	"adapter-customizer/internal/model"
)

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <bindings.yaml>",
		Short: "Apply adapter customizations and write the patched model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			m, diags, err := run(cfg, args[0])
			if diags != nil {
				printDiagnostics(cmd.ErrOrStderr(), diags, cfg.Verbose)
			}

			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")

			return writeModel(cmd, m, cfg.Format, out)
		},
	}

	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	cmd.Flags().String("format", "yaml", "output format: yaml or json")

	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <bindings.yaml>",
		Short: "Resolve adapter customizations and report problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			_, diags, err := run(cfg, args[0])
			if diags != nil {
				printDiagnostics(cmd.ErrOrStderr(), diags, true)
			}

			if err != nil {
				return err
			}

			if diags.HasErrors() {
				return fmt.Errorf("%d adapter(s) could not be attached", len(diags.Errors))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return nil
		},
	}
}

// run loads the bindings file at path and applies the customizations.
func run(cfg *Config, path string) (*model.Model, *diagnostic.Diagnostics, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	f, err := bindings.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	// Customizations in the file are declared under the configured tag.
	if cfg.Tag != "" {
		f.Tag = cfg.Tag
	}

	m, err := bindings.Build(f)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid bindings file %s: %w", path, err)
	}

	declared, err := bindings.Loader(f)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid adapter declarations in %s: %w", path, err)
	}

	packageLoader := analyze.NewPackageLoader(cfg.Dir)
	if len(cfg.Packages) > 0 {
		logger.Debug("preloading adapter packages", zap.Strings("patterns", cfg.Packages))

		if err := packageLoader.Preload(cfg.Packages...); err != nil {
			return nil, nil, err
		}
	}

	pluginCfg := customize.DefaultConfig()
	pluginCfg.Tag = model.ParseQName(f.Tag)
	pluginCfg.Strict = cfg.Strict

	loader := analyze.ChainLoader{declared, packageLoader}
	diags, err := customize.NewPlugin(loader, pluginCfg, logger).Run(m)

	return m, diags, err
}

func writeModel(cmd *cobra.Command, m *model.Model, format, out string) error {
	var (
		data []byte
		err  error
	)

	if format == "json" {
		data, err = model.ExportJSON(m)
	} else {
		data, err = model.ExportYAML(m)
	}

	if err != nil {
		return fmt.Errorf("failed to export model: %w", err)
	}

	if out == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	return nil
}
