package card

import "fmt"

// Rank is the face value of a playing card. Ace ranks high, so the
// numeric values run Two (2) through Ace (14).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = []string{
	"Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

var rankShorts = []string{
	"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A",
}

// String returns the full rank name (e.g., "Queen")
func (r Rank) String() string {
	if r < Two || r > Ace {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r-Two]
}

// Short returns the compact rank form used on card faces (e.g., "Q")
func (r Rank) Short() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankShorts[r-Two]
}

// Suit is one of the four card families
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitNames = []string{"Spades", "Hearts", "Diamonds", "Clubs"}

var suitSymbols = []string{"♠", "♥", "♦", "♣"}

// String returns the plural suit name (e.g., "Spades")
func (s Suit) String() string {
	if s < Spades || s > Clubs {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the unicode pip for the suit (e.g., "♠")
func (s Suit) Symbol() string {
	if s < Spades || s > Clubs {
		return "?"
	}
	return suitSymbols[s]
}

// Red reports whether the suit prints in red on a card face
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable playing card. Two cards are equal iff both
// rank and suit match, so Card values compare directly with ==.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the long card name (e.g., "Ace of Spades")
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns the compact card form (e.g., "A♠")
func (c Card) Short() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// Ranks returns all thirteen ranks in ascending order
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Suits returns all four suits in canonical order
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}
