package deck

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/arcanaland/croupier/internal/card"
)

// Drawing errors. Both are recoverable conditions reported to the
// caller; the deck is never left partially drawn.
var (
	// ErrEmptyDeck is returned by DrawOne when no cards remain.
	ErrEmptyDeck = errors.New("deck is empty")

	// ErrInsufficientCards is returned by Draw when the request
	// exceeds the number of remaining cards.
	ErrInsufficientCards = errors.New("not enough cards in deck")
)

// Deck is an owned, ordered stack of playing cards. Cards are drawn
// from the top and returned to the bottom. A Deck is not safe for
// concurrent use; callers that share one must serialize access.
type Deck struct {
	cards []card.Card
}

// New returns a full 52-card deck in canonical order: suits in
// Spades, Hearts, Diamonds, Clubs order, ranks Two through Ace
// within each suit.
func New() *Deck {
	cards := make([]card.Card, 0, 52)
	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			cards = append(cards, card.Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

// NewShuffled returns a full 52-card deck shuffled deterministically
// from the given seed.
func NewShuffled(seed int64) *Deck {
	d := New()
	d.Shuffle(seed)
	return d
}

// Of returns a deck holding exactly the given cards, top first. The
// slice is copied; the caller keeps ownership of its argument.
func Of(cards []card.Card) *Deck {
	d := &Deck{cards: make([]card.Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Len returns the number of cards remaining in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether the deck has no cards left
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// DrawOne removes and returns the top card of the deck. It returns
// ErrEmptyDeck when no cards remain.
func (d *Deck) DrawOne() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmptyDeck
	}
	top := d.cards[0]
	d.cards = d.cards[1:]
	return top, nil
}

// Draw removes and returns the top n cards of the deck. The draw is
// atomic: if fewer than n cards remain it returns
// ErrInsufficientCards and leaves the deck unmodified. Drawing zero
// cards returns an empty slice.
func (d *Deck) Draw(n int) ([]card.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("draw count must be non-negative, got %d", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("drawing %d of %d remaining cards: %w",
			n, len(d.cards), ErrInsufficientCards)
	}
	drawn := make([]card.Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// Put places cards on the bottom of the deck, emulating a discard
// pile that is worked back into play.
func (d *Deck) Put(cards ...card.Card) {
	d.cards = append(d.cards, cards...)
}

// Fill returns every card of the standard 52 that is missing from
// the deck to the bottom, in canonical order. Cards already present
// are not duplicated.
func (d *Deck) Fill() {
	present := make(map[card.Card]bool, len(d.cards))
	for _, c := range d.cards {
		present[c] = true
	}
	for _, c := range New().cards {
		if !present[c] {
			d.cards = append(d.cards, c)
		}
	}
}

// Shuffle reorders the deck in place, deterministically from the
// given seed.
func (d *Deck) Shuffle(seed int64) {
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
