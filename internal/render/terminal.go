package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/game"
	"github.com/arcanaland/blackjack/internal/score"
)

const defaultWidth = 80

// Theme holds the parsed card colors
type Theme struct {
	Red    colorful.Color
	Black  colorful.Color
	Hidden colorful.Color
}

// ParseTheme converts the configured hex colors
func ParseTheme(t config.Theme) (Theme, error) {
	var theme Theme
	var err error
	if theme.Red, err = colorful.Hex(t.Red); err != nil {
		return Theme{}, fmt.Errorf("invalid theme.red %q: %w", t.Red, err)
	}
	if theme.Black, err = colorful.Hex(t.Black); err != nil {
		return Theme{}, fmt.Errorf("invalid theme.black %q: %w", t.Black, err)
	}
	if theme.Hidden, err = colorful.Hex(t.Hidden); err != nil {
		return Theme{}, fmt.Errorf("invalid theme.hidden %q: %w", t.Hidden, err)
	}
	return theme, nil
}

// Terminal draws rounds as text on a terminal or any other writer
type Terminal struct {
	out     io.Writer
	theme   Theme
	color   bool
	width   int
	enabled bool

	label *colorize.Color
	info  *colorize.Color
	good  *colorize.Color
	bad   *colorize.Color
}

// NewTerminal returns a renderer writing to out. Colors are only emitted
// when useColor is set.
func NewTerminal(out io.Writer, theme Theme, useColor bool) *Terminal {
	t := &Terminal{
		out:   out,
		theme: theme,
		color: useColor,
		width: Width(out),
		label: colorize.New(colorize.FgCyan),
		info:  colorize.New(colorize.FgHiWhite, colorize.Bold),
		good:  colorize.New(colorize.FgGreen),
		bad:   colorize.New(colorize.FgRed),
	}
	for _, c := range []*colorize.Color{t.label, t.info, t.good, t.bad} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of w, or 80 if it has none
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// RenderHand prints one seat's cards, masking the first when hideFirst is set
func (t *Terminal) RenderHand(seat game.Seat, hand game.Hand, hideFirst bool) {
	faces := make([]string, len(hand))
	for i, c := range hand {
		if hideFirst && i == 0 {
			faces[i] = t.paint("[ ? ]", t.theme.Hidden)
			continue
		}
		faces[i] = t.Card(c)
	}
	fmt.Fprintf(t.out, "%s %s\n", t.label.Sprint(seat.String()+":"), strings.Join(faces, " "))
}

// ShowMessage prints the status line under a rule as wide as the message
func (t *Terminal) ShowMessage(msg string) {
	line := t.info.Sprint(msg)
	width := min(utf8.RuneCountInString(stripANSI(line)), t.width)
	fmt.Fprintln(t.out, strings.Repeat("─", width))
	fmt.Fprintln(t.out, line)
}

func (t *Terminal) SetActionsEnabled(enabled bool) {
	t.enabled = enabled
}

// ShowScore prints the win/loss/draw tally
func (t *Terminal) ShowScore(c score.Counters) {
	fmt.Fprintf(t.out, "%s %s  %s  %s\n",
		t.label.Sprint("Score:"),
		t.good.Sprintf("W %d", c.Wins),
		t.bad.Sprintf("L %d", c.Losses),
		fmt.Sprintf("D %d", c.Draws))
}

// Prompt returns the list of commands available right now
func (t *Terminal) Prompt() string {
	if t.enabled {
		return "[h]it [s]tand [n]ew [q]uit > "
	}
	return "[n]ew [q]uit > "
}

// Card returns the face of a card, colored by suit
func (t *Terminal) Card(c card.Card) string {
	col := t.theme.Black
	if c.IsRed() {
		col = t.theme.Red
	}
	return t.paint(fmt.Sprintf("[%s]", c), col)
}

func (t *Terminal) paint(text string, c colorful.Color) string {
	if !t.color {
		return text
	}
	return ansiColorString(text, c)
}

// ansiColorString wraps text in a 24-bit foreground color sequence
func ansiColorString(text string, c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// stripANSI removes ANSI escape sequences from a string
func stripANSI(s string) string {
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
