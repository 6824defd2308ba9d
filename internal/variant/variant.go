package variant

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/croupier/internal/card"
	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/deck"
)

// Variant describes how to build a playable deck from the standard
// 52 cards: how many packs to combine, which ranks to strip, and
// whether the result starts shuffled.
type Variant struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Description   string   `toml:"description"`
	Packs         int      `toml:"packs"`
	StrippedRanks []string `toml:"stripped_ranks"`
	Shuffle       bool     `toml:"shuffle"`
}

// builtins are the variants that ship with croupier. User variants in
// the library shadow these by ID.
var builtins = map[string]Variant{
	"standard": {
		ID:          "standard",
		Name:        "Standard",
		Description: "Single 52-card pack",
		Packs:       1,
		Shuffle:     true,
	},
	"piquet": {
		ID:            "piquet",
		Name:          "Piquet",
		Description:   "32-card pack, twos through sixes stripped",
		Packs:         1,
		StrippedRanks: []string{"two", "three", "four", "five", "six"},
		Shuffle:       true,
	},
	"euchre": {
		ID:            "euchre",
		Name:          "Euchre",
		Description:   "24-card pack, twos through eights stripped",
		Packs:         1,
		StrippedRanks: []string{"two", "three", "four", "five", "six", "seven", "eight"},
		Shuffle:       true,
	},
	"shoe6": {
		ID:          "shoe6",
		Name:        "Six-Deck Shoe",
		Description: "Six packs combined, as dealt from a blackjack shoe",
		Packs:       6,
		Shuffle:     true,
	},
}

// ranksByName maps lowercase rank names to ranks for stripped_ranks
// entries. Both long names ("queen") and face shorts ("q") work.
var ranksByName = map[string]card.Rank{}

func init() {
	for _, r := range card.Ranks() {
		ranksByName[strings.ToLower(r.String())] = r
		ranksByName[strings.ToLower(r.Short())] = r
	}
}

// Load resolves a variant by ID, checking the variant library first
// and falling back to the built-in variants.
func Load(id string) (*Variant, error) {
	libraryPath := config.GetVariantLibraryPath()
	variantPath := filepath.Join(libraryPath, id+".toml")

	if _, err := os.Stat(variantPath); err == nil {
		return LoadFile(variantPath)
	}

	if v, ok := builtins[id]; ok {
		return &v, nil
	}

	return nil, fmt.Errorf("variant not found: %s", id)
}

// LoadFile loads and validates a variant from a TOML file
func LoadFile(path string) (*Variant, error) {
	var v Variant
	if _, err := toml.DecodeFile(path, &v); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", filepath.Base(path), err)
	}

	if v.ID == "" {
		v.ID = strings.TrimSuffix(filepath.Base(path), ".toml")
	}

	if errs := v.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid variant %s: %s", v.ID, strings.Join(errs, "; "))
	}

	return &v, nil
}

// List returns all known variants sorted by ID, built-ins plus any
// valid variants found in the library. Library variants shadow
// built-ins with the same ID.
func List() []Variant {
	byID := make(map[string]Variant, len(builtins))
	for id, v := range builtins {
		byID[id] = v
	}

	libraryPath := config.GetVariantLibraryPath()
	if entries, err := os.ReadDir(libraryPath); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}
			v, err := LoadFile(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid variant, skip
				continue
			}
			byID[v.ID] = *v
		}
	}

	variants := make([]Variant, 0, len(byID))
	for _, v := range byID {
		variants = append(variants, v)
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i].ID < variants[j].ID })
	return variants
}

// Validate checks the variant definition and returns a list of
// problems, empty when the variant is usable.
func (v *Variant) Validate() []string {
	var errs []string

	if v.Packs < 1 {
		errs = append(errs, fmt.Sprintf("packs must be at least 1, got %d", v.Packs))
	}

	seen := map[card.Rank]bool{}
	for _, name := range v.StrippedRanks {
		r, ok := ranksByName[strings.ToLower(name)]
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown rank in stripped_ranks: %q", name))
			continue
		}
		if seen[r] {
			errs = append(errs, fmt.Sprintf("duplicate rank in stripped_ranks: %q", name))
		}
		seen[r] = true
	}
	if len(seen) == 13 {
		errs = append(errs, "stripped_ranks removes every rank")
	}

	return errs
}

// CardsPerPack returns the number of cards a single pack contributes
// after stripping.
func (v *Variant) CardsPerPack() int {
	stripped := 0
	for _, name := range v.StrippedRanks {
		if _, ok := ranksByName[strings.ToLower(name)]; ok {
			stripped++
		}
	}
	return (13 - stripped) * 4
}

// Build constructs the variant's deck. When the variant shuffles,
// the order is deterministic for a given seed.
func (v *Variant) Build(seed int64) (*deck.Deck, error) {
	if errs := v.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid variant %s: %s", v.ID, strings.Join(errs, "; "))
	}

	stripped := map[card.Rank]bool{}
	for _, name := range v.StrippedRanks {
		stripped[ranksByName[strings.ToLower(name)]] = true
	}

	cards := make([]card.Card, 0, v.Packs*v.CardsPerPack())
	for pack := 0; pack < v.Packs; pack++ {
		for _, suit := range card.Suits() {
			for _, rank := range card.Ranks() {
				if stripped[rank] {
					continue
				}
				cards = append(cards, card.Card{Rank: rank, Suit: suit})
			}
		}
	}

	d := deck.Of(cards)
	if v.Shuffle {
		d.Shuffle(seed)
	}
	return d, nil
}
