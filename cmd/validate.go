package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/croupier/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a variant file or variant library directory",
	Long: `Validate checks a deck variant TOML file, or a whole variant library
directory, for problems: unparseable TOML, missing fields, unknown or
duplicate stripped ranks, and bad pack counts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		// Check if path exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("path not found: %s", path)
		}

		// Create validator and run validation
		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ '%s' is valid.\n", path)
		} else {
			fmt.Printf("❌ '%s' has %d validation errors:\n", path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
