package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/render"
	"github.com/arcanaland/croupier/internal/variant"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw [count]",
	Short: "Draw cards from a freshly built deck",
	Long: `Draw builds a deck and draws the requested number of cards from the top.

The deck is built from a variant, which defaults to the default variant in
your config. Builds are seeded: pass --seed to get a reproducible draw,
otherwise the current time is used.

Examples:
  croupier draw
  croupier draw 5
  croupier draw 5 --variant piquet
  croupier draw 3 --seed 42 --style words`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count: %s", args[0])
			}
			count = n
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		applyColorMode(cfg.Color)

		variantID, _ := cmd.Flags().GetString("variant")
		if variantID == "" {
			variantID = cfg.DefaultVariant
		}

		v, err := variant.Load(variantID)
		if err != nil {
			return err
		}

		seed, _ := cmd.Flags().GetInt64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		d, err := v.Build(seed)
		if err != nil {
			return err
		}

		drawn, err := d.Draw(count)
		if err != nil {
			return err
		}

		style, _ := cmd.Flags().GetString("style")
		if style == "" {
			style = cfg.Style
		}

		r := render.New(os.Stdout, style)
		r.Hand(drawn)
		fmt.Printf("\n%d cards remaining.\n", d.Len())

		return nil
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringP("variant", "v", "", "Deck variant to build (defaults to config)")
	drawCmd.Flags().Int64P("seed", "s", 0, "Seed for the deck shuffle (defaults to current time)")
	drawCmd.Flags().String("style", "", "Card style: symbols or words (defaults to config)")
}
