package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .severed.yaml config file",
	Long:  `Create a .severed.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".severed.yaml"); err == nil && !force {
			return fmt.Errorf(".severed.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".severed.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .severed.yaml")
		return nil
	},
}

const defaultConfig = `# severed configuration
# Docs: https://github.com/yacobolo/severed

verbose: false

extract:
  root: .
  include:
    - "**/*.css.js"
    - "**/*.css.ts"
    - "**/*.css.tsx"
  exclude:
    - "**/node_modules/**"
  write-css-files: false

check:
  include:
    - "**/*.css.js"
    - "**/*.css.ts"
    - "**/*.css.tsx"
  exclude:
    - "**/node_modules/**"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
