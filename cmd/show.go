package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/render"
	"github.com/arcanaland/croupier/internal/variant"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a deck variant's full contents grouped by suit",
	Long: `Show builds a deck variant in canonical (unshuffled) order and displays
its contents grouped by suit. Use --back to render the card back instead.

Examples:
  croupier show
  croupier show --variant piquet
  croupier show --back`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		applyColorMode(cfg.Color)

		if back, _ := cmd.Flags().GetBool("back"); back {
			fmt.Print(render.CardBack(22, 8))
			return nil
		}

		variantID, _ := cmd.Flags().GetString("variant")
		if variantID == "" {
			variantID = cfg.DefaultVariant
		}

		v, err := variant.Load(variantID)
		if err != nil {
			return err
		}

		// Canonical order regardless of the variant's shuffle setting
		unshuffled := *v
		unshuffled.Shuffle = false
		d, err := unshuffled.Build(0)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%d cards)\n\n", v.Name, d.Len())
		r := render.New(os.Stdout, cfg.Style)
		r.BySuit(d.Cards())

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("variant", "v", "", "Deck variant to display (defaults to config)")
	showCmd.Flags().Bool("back", false, "Render the card back instead of the deck contents")
}
