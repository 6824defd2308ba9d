package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/croupier/internal/card"

	colorize "github.com/fatih/color"
)

// Rendering styles for card output
const (
	StyleSymbols = "symbols" // compact form, e.g. "A♠"
	StyleWords   = "words"   // long form, e.g. "Ace of Spades"
)

// Renderer writes cards and hands to a terminal. Hearts and diamonds
// print in red when color is enabled.
type Renderer struct {
	Out   io.Writer
	Style string
}

// New returns a renderer writing to out with the given style. An
// unknown style falls back to symbols.
func New(out io.Writer, style string) *Renderer {
	if style != StyleWords {
		style = StyleSymbols
	}
	return &Renderer{Out: out, Style: style}
}

var (
	redSuit   = colorize.New(colorize.FgRed)
	blackSuit = colorize.New(colorize.FgHiWhite)
)

// Card returns the rendered form of a single card
func (r *Renderer) Card(c card.Card) string {
	text := c.Short()
	if r.Style == StyleWords {
		text = c.String()
	}

	if c.Suit.Red() {
		return redSuit.Sprint(text)
	}
	return blackSuit.Sprint(text)
}

// Hand prints the cards on as few lines as fit the terminal width
func (r *Renderer) Hand(cards []card.Card) {
	width := terminalWidth()

	line := ""
	for _, c := range cards {
		rendered := r.Card(c)
		if line == "" {
			line = rendered
			continue
		}
		if visibleWidth(line)+2+visibleWidth(rendered) > width {
			fmt.Fprintln(r.Out, line)
			line = rendered
			continue
		}
		line += "  " + rendered
	}
	if line != "" {
		fmt.Fprintln(r.Out, line)
	}
}

// BySuit prints the cards grouped by suit, one labeled line per
// suit, preserving deck order within each group.
func (r *Renderer) BySuit(cards []card.Card) {
	for _, suit := range card.Suits() {
		var shorts []string
		for _, c := range cards {
			if c.Suit != suit {
				continue
			}
			short := c.Rank.Short()
			if suit.Red() {
				short = redSuit.Sprint(short)
			}
			shorts = append(shorts, short)
		}

		label := colorize.CyanString("%-8s %s ", suit.String(), suit.Symbol())
		if len(shorts) == 0 {
			fmt.Fprintln(r.Out, label+"(none)")
			continue
		}
		fmt.Fprintln(r.Out, label+strings.Join(shorts, " "))
	}
}

// CardBack renders a card back as a diagonal two-color gradient
// using upper-half-block cells, two pixel rows per terminal line.
func CardBack(width, height int) string {
	top, _ := colorful.Hex("#1d2951")
	bottom, _ := colorful.Hex("#7b1e3c")

	var buffer strings.Builder
	rows := height * 2
	for y := 0; y < rows; y += 2 {
		for x := 0; x < width; x++ {
			upper := gradientAt(top, bottom, x, y, width, rows)
			lower := gradientAt(top, bottom, x, y+1, width, rows)
			buffer.WriteString(halfBlock(upper, lower))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// gradientAt blends the two endpoint colors along the diagonal
func gradientAt(from, to colorful.Color, x, y, width, height int) colorful.Color {
	t := (float64(x)/float64(width-1) + float64(y)/float64(height-1)) / 2
	return from.BlendLuv(to, t)
}

// halfBlock formats one ▀ cell with truecolor foreground and background
func halfBlock(upper, lower colorful.Color) string {
	r1, g1, b1 := upper.RGB255()
	r2, g2, b2 := lower.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
		r1, g1, b1, r2, g2, b2)
}

// terminalWidth returns the width of the attached terminal, or 80
// when stdout is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// visibleWidth counts the printed width of a string, excluding ANSI
// escape sequences
func visibleWidth(s string) int {
	return len([]rune(stripAnsi(s)))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
