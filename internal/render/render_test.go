package render

import (
	"bytes"
	"strings"
	"testing"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/croupier/internal/card"
)

func TestCardStyles(t *testing.T) {
	colorize.NoColor = true

	var buf bytes.Buffer
	c := card.Card{Rank: card.Ace, Suit: card.Spades}

	if got := New(&buf, StyleWords).Card(c); got != "Ace of Spades" {
		t.Errorf("words style = %q, want %q", got, "Ace of Spades")
	}
	if got := New(&buf, StyleSymbols).Card(c); got != "A♠" {
		t.Errorf("symbols style = %q, want %q", got, "A♠")
	}

	// Unknown styles fall back to symbols
	if got := New(&buf, "wat").Card(c); got != "A♠" {
		t.Errorf("fallback style = %q, want %q", got, "A♠")
	}
}

func TestHand(t *testing.T) {
	colorize.NoColor = true

	var buf bytes.Buffer
	r := New(&buf, StyleSymbols)
	r.Hand([]card.Card{
		{Rank: card.Ace, Suit: card.Spades},
		{Rank: card.King, Suit: card.Hearts},
		{Rank: card.Ten, Suit: card.Diamonds},
	})

	want := "A♠  K♥  10♦\n"
	if got := buf.String(); got != want {
		t.Errorf("Hand output = %q, want %q", got, want)
	}
}

func TestBySuit(t *testing.T) {
	colorize.NoColor = true

	var buf bytes.Buffer
	r := New(&buf, StyleSymbols)
	r.BySuit([]card.Card{
		{Rank: card.Ace, Suit: card.Spades},
		{Rank: card.King, Suit: card.Spades},
		{Rank: card.Two, Suit: card.Hearts},
	})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("BySuit printed %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Spades") || !strings.Contains(lines[0], "A K") {
		t.Errorf("spades line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Hearts") || !strings.Contains(lines[1], "2") {
		t.Errorf("hearts line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "(none)") || !strings.Contains(lines[3], "(none)") {
		t.Errorf("empty suits should print (none), got %q and %q", lines[2], lines[3])
	}
}

func TestCardBack(t *testing.T) {
	out := CardBack(10, 4)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("CardBack printed %d lines, want 4", len(lines))
	}
	for i, line := range lines {
		if w := visibleWidth(line); w != 10 {
			t.Errorf("line %d visible width = %d, want 10", i, w)
		}
	}
}

func TestStripAnsi(t *testing.T) {
	in := "\x1b[38;2;1;2;3mA\x1b[0m♠"
	if got := stripAnsi(in); got != "A♠" {
		t.Errorf("stripAnsi = %q, want %q", got, "A♠")
	}
}
