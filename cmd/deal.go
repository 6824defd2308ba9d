package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/arcanaland/croupier/internal/card"
	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/deck"
	"github.com/arcanaland/croupier/internal/render"
	"github.com/arcanaland/croupier/internal/variant"
	"github.com/spf13/cobra"
)

var dealCmd = &cobra.Command{
	Use:   "deal <hands> <size>",
	Short: "Deal hands round-robin from a single deck",
	Long: `Deal builds a deck and deals the given number of hands of the given
size, one card at a time around the table, the way a dealer would.

Examples:
  croupier deal 4 5
  croupier deal 2 10 --variant euchre --seed 7`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		handCount, err := strconv.Atoi(args[0])
		if err != nil || handCount < 1 {
			return fmt.Errorf("invalid hand count: %s", args[0])
		}
		handSize, err := strconv.Atoi(args[1])
		if err != nil || handSize < 1 {
			return fmt.Errorf("invalid hand size: %s", args[1])
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

		if handCount*handSize > d.Len() {
			return fmt.Errorf("cannot deal %d hands of %d from %d cards: %w",
				handCount, handSize, d.Len(), deck.ErrInsufficientCards)
		}

		hands := make([][]card.Card, handCount)
		for round := 0; round < handSize; round++ {
			for h := 0; h < handCount; h++ {
				c, err := d.DrawOne()
				if err != nil {
					return err
				}
				hands[h] = append(hands[h], c)
			}
		}

		r := render.New(os.Stdout, cfg.Style)
		for i, hand := range hands {
			fmt.Printf("Hand %d:\n", i+1)
			r.Hand(hand)
			fmt.Println()
		}
		fmt.Printf("%d cards remaining.\n", d.Len())

		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().StringP("variant", "v", "", "Deck variant to build (defaults to config)")
	dealCmd.Flags().Int64P("seed", "s", 0, "Seed for the deck shuffle (defaults to current time)")
}
