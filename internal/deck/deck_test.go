package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/croupier/internal/card"
)

func TestNew(t *testing.T) {
	d := New()

	require.Equal(t, 52, d.Len())
	assert.False(t, d.Empty())

	seen := make(map[card.Card]bool)
	for _, c := range d.Cards() {
		assert.False(t, seen[c], "duplicate card: %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestNewShuffledDeterministic(t *testing.T) {
	a := NewShuffled(42)
	b := NewShuffled(42)
	assert.Equal(t, a.Cards(), b.Cards(), "same seed should produce the same order")

	c := NewShuffled(7)
	assert.NotEqual(t, a.Cards(), c.Cards(), "different seeds should produce different orders")

	// Shuffling never adds or loses cards
	seen := make(map[card.Card]bool)
	for _, cd := range a.Cards() {
		seen[cd] = true
	}
	assert.Len(t, seen, 52)
}

func TestDraw(t *testing.T) {
	d := New()

	drawn, err := d.Draw(5)
	require.NoError(t, err)
	assert.Len(t, drawn, 5)
	assert.Equal(t, 47, d.Len())

	seen := make(map[card.Card]bool)
	for _, c := range drawn {
		assert.False(t, seen[c], "duplicate drawn card: %s", c)
		seen[c] = true
	}
}

func TestDrawZero(t *testing.T) {
	d := New()

	drawn, err := d.Draw(0)
	require.NoError(t, err)
	assert.NotNil(t, drawn)
	assert.Empty(t, drawn)
	assert.Equal(t, 52, d.Len())
}

func TestDrawNegative(t *testing.T) {
	d := New()

	_, err := d.Draw(-1)
	require.Error(t, err)
	assert.Equal(t, 52, d.Len())
}

func TestDrawTooMany(t *testing.T) {
	d := New()

	_, err := d.Draw(53)
	require.ErrorIs(t, err, ErrInsufficientCards)
	assert.Equal(t, 52, d.Len(), "failed draw must leave the deck unmodified")

	// Drain and check the boundary again
	_, err = d.Draw(52)
	require.NoError(t, err)
	_, err = d.Draw(1)
	require.ErrorIs(t, err, ErrInsufficientCards)
	assert.Equal(t, 0, d.Len())
}

func TestDrawOne(t *testing.T) {
	d := NewShuffled(1)

	seen := make(map[card.Card]bool)
	for i := 0; i < 52; i++ {
		c, err := d.DrawOne()
		require.NoError(t, err, "draw %d", i+1)
		assert.False(t, seen[c], "duplicate card: %s", c)
		seen[c] = true
	}

	assert.True(t, d.Empty())
	_, err := d.DrawOne()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestPut(t *testing.T) {
	d := New()
	c, err := d.DrawOne()
	require.NoError(t, err)
	require.Equal(t, 51, d.Len())

	d.Put(c)
	assert.Equal(t, 52, d.Len())

	// Put places cards on the bottom, not the top
	cards := d.Cards()
	assert.Equal(t, c, cards[len(cards)-1])
}

func TestFill(t *testing.T) {
	d := NewShuffled(3)
	drawn, err := d.Draw(5)
	require.NoError(t, err)
	require.Equal(t, 47, d.Len())

	d.Fill()
	assert.Equal(t, 52, d.Len())

	seen := make(map[card.Card]bool)
	for _, c := range d.Cards() {
		assert.False(t, seen[c], "duplicate after fill: %s", c)
		seen[c] = true
	}
	for _, c := range drawn {
		assert.True(t, seen[c], "drawn card %s should be restored", c)
	}

	// Filling a full deck changes nothing
	before := d.Cards()
	d.Fill()
	assert.Equal(t, before, d.Cards())
}

func TestOfCopies(t *testing.T) {
	cards := []card.Card{
		{Rank: card.Ace, Suit: card.Spades},
		{Rank: card.King, Suit: card.Hearts},
	}
	d := Of(cards)

	cards[0] = card.Card{Rank: card.Two, Suit: card.Clubs}
	got := d.Cards()
	assert.Equal(t, card.Card{Rank: card.Ace, Suit: card.Spades}, got[0],
		"deck should own its cards, not alias the caller's slice")
}

func TestCardsCopies(t *testing.T) {
	d := New()
	cards := d.Cards()
	cards[0] = card.Card{Rank: card.Five, Suit: card.Clubs}

	top, err := d.DrawOne()
	require.NoError(t, err)
	assert.Equal(t, card.Card{Rank: card.Two, Suit: card.Spades}, top,
		"mutating the returned slice should not affect the deck")
}

func TestShuffleKeepsContents(t *testing.T) {
	d := New()
	_, err := d.Draw(10)
	require.NoError(t, err)

	before := make(map[card.Card]bool)
	for _, c := range d.Cards() {
		before[c] = true
	}

	d.Shuffle(99)
	assert.Equal(t, 42, d.Len())
	for _, c := range d.Cards() {
		assert.True(t, before[c], "shuffle introduced card %s", c)
	}
}
