package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/variant"
	"github.com/spf13/cobra"
)

// variantCmd represents the variant command group
var variantCmd = &cobra.Command{
	Use:   "variant",
	Short: "Manage deck variants in your variant library",
	Long:  `Commands for managing deck variants in your variant library.`,
}

// variantListCmd represents the variant list command
var variantListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available deck variants",
	Run: func(cmd *cobra.Command, args []string) {
		// Get default variant
		defaultVariant, err := config.GetDefaultVariant()
		if err != nil {
			fmt.Printf("Error getting default variant: %v\n", err)
			return
		}

		variants := variant.List()
		if len(variants) == 0 {
			fmt.Println("No variants found.")
			return
		}

		for _, v := range variants {
			cards := v.Packs * v.CardsPerPack()
			if v.ID == defaultVariant {
				fmt.Printf("* %s (%s, %d cards) [DEFAULT]\n", v.ID, v.Name, cards)
			} else {
				fmt.Printf("  %s (%s, %d cards)\n", v.ID, v.Name, cards)
			}
		}

		libraryPath := config.GetVariantLibraryPath()
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Println("\nVariant library at", libraryPath, "does not exist.")
			fmt.Println("Run 'croupier variant init' to create it.")
		}
	},
}

// variantSetDefaultCmd represents the variant set-default command
var variantSetDefaultCmd = &cobra.Command{
	Use:   "set-default [variant_id]",
	Short: "Set the default deck variant",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		variantID := args[0]

		// Try to load the variant to make sure it's valid
		_, err := variant.Load(variantID)
		if err != nil {
			fmt.Printf("Error: Not a valid variant - %v\n", err)
			return
		}

		// Set as default
		err = config.SetDefaultVariant(variantID)
		if err != nil {
			fmt.Printf("Error setting default variant: %v\n", err)
			return
		}

		fmt.Printf("Default variant set to: %s\n", variantID)
	},
}

// variantInitCmd represents the variant init command
var variantInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the variant library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetVariantLibraryPath()

		// Create the variant library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			fmt.Printf("Error creating variant library: %v\n", err)
			return
		}

		fmt.Println("Variant library initialized at:", libraryPath)
		fmt.Println("You can now add variants as .toml files in this directory.")
		fmt.Println("Example:", filepath.Join(libraryPath, "pinochle.toml"))

		// Initialize config
		_, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		configPath := config.GetConfigFilePath()
		fmt.Println("Config file initialized at:", configPath)
	},
}

func init() {
	RootCmd.AddCommand(variantCmd)
	variantCmd.AddCommand(variantListCmd)
	variantCmd.AddCommand(variantSetDefaultCmd)
	variantCmd.AddCommand(variantInitCmd)
}
