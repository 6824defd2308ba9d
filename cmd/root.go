package cmd

import (
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "croupier",
	Short: "Tool for drawing and dealing from standard playing-card decks",
	Long: `Croupier is a command-line tool for building, drawing from, and dealing
standard 52-card decks. Decks are built from variants (standard, piquet,
euchre, multi-pack shoes), and custom variants can be kept in your variant
library as TOML files.`,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// applyColorMode adjusts global color output for the configured mode.
// "auto" keeps the terminal detection done by the color package.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		colorize.NoColor = false
	case "never":
		colorize.NoColor = true
	}
}
