// Package main provides the CLI entrypoint for adapter-customizer.
//
// adapter-customizer applies xmlAdapter customizations to a schema model:
//   - Loads a bindings file describing schema types and their customizations
//   - Resolves the winning adapter per element and attribute property
//   - Loads adapter types from Go packages (or from declarations in the file)
//   - Writes the patched model for the code emitter
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adapter-customizer",
		Short: "Apply xmlAdapter customizations to a schema model",
		Long: `adapter-customizer resolves the xmlAdapter customizations attached to schema
properties and types, checks each named adapter against the xmladapter.Adapter
contract and attaches it to the model handed to the code emitter.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ./adapter-customizer.yaml)")
	flags.String("tag", "", "qualified name of the customization element, e.g. {urn:x}xmlAdapter")
	flags.Bool("strict", false, "fail when an adapter cannot be attached")
	flags.StringSlice("packages", nil, "Go package patterns to preload adapters from")
	flags.String("dir", "", "directory Go packages are loaded from")
	flags.BoolP("verbose", "v", false, "log every step")

	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "adapter-customizer %s (%s)\n", Version, GitCommit)
		},
	}
}
