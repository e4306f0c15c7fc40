// Package main is the severed CLI: a standalone driver for the
// extraction pipeline (package severed / internal/extract) that runs
// outside of any host bundler, for local inspection and CI gating of
// generated CSS.
package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "severed",
	Short: "Build-time CSS-in-source extractor",
	Long: `severed statically replaces css`+"`"+`…`+"`"+` tagged template literals with
generated class-name constants, emitting the underlying CSS as a sibling
asset.

Run without a subcommand to extract in place; use "check" for a read-only
CI gate.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runExtract(extractCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".severed.yaml", "Config file path")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
