package termstyle

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Color is a named terminal palette color.
type Color int

// Palette colors. The "Light" variants map to the bright (90-97) VT100
// codes; Gray is bright black.
const (
	ColorNone Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorLightRed
	ColorLightGreen
	ColorLightYellow
	ColorLightBlue
	ColorLightMagenta
	ColorLightCyan
	ColorLightWhite
)

// fg returns the SGR foreground parameter for the color, or -1 for none.
func (c Color) fg() int {
	switch {
	case c >= ColorBlack && c <= ColorWhite:
		return 30 + int(c-ColorBlack)
	case c >= ColorGray && c <= ColorLightWhite:
		return 90 + int(c-ColorGray)
	}
	return -1
}

// bg returns the SGR background parameter for the color, or -1 for none.
func (c Color) bg() int {
	if p := c.fg(); p >= 0 {
		return p + 10
	}
	return -1
}

// Style is a bitmask of SGR text attributes.
type Style uint8

// Text attributes.
const (
	Bold Style = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Reverse
	Conceal
)

var styleParams = []struct {
	style Style
	param int
}{
	{Bold, 1},
	{Dim, 2},
	{Italic, 3},
	{Underline, 4},
	{Blink, 5},
	{Reverse, 7},
	{Conceal, 8},
}

// Mode selects how Text is rendered for display.
type Mode int

// Display modes.
const (
	ModeColor Mode = iota // colors and styles
	ModeStyle             // styles only
	ModePlain             // no escape codes
)

// ParseMode parses a display mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "color":
		return ModeColor, nil
	case "style":
		return ModeStyle, nil
	case "plain":
		return ModePlain, nil
	}
	return ModeColor, fmt.Errorf("invalid display mode %q", s)
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeColor:
		return "color"
	case ModeStyle:
		return "style"
	case ModePlain:
		return "plain"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

type span struct {
	text  string
	fg    Color
	bg    Color
	style Style
}

// Text is styled terminal text, a sequence of independently styled spans.
// The zero value is empty text.
type Text struct {
	spans []span
}

// Option configures a span created by New.
type Option func(*span)

// Fg sets the foreground color.
func Fg(c Color) Option { return func(s *span) { s.fg = c } }

// Bg sets the background color.
func Bg(c Color) Option { return func(s *span) { s.bg = c } }

// Styles sets text attributes.
func Styles(st Style) Option { return func(s *span) { s.style = st } }

// New creates a single-span Text.
func New(text string, opts ...Option) Text {
	sp := span{text: text}
	for _, opt := range opts {
		opt(&sp)
	}
	return Text{spans: []span{sp}}
}

// Join concatenates parts into one Text.
func Join(parts ...Text) Text {
	var t Text
	for _, p := range parts {
		t.spans = append(t.spans, p.spans...)
	}
	return t
}

// Append returns t with parts appended.
func (t Text) Append(parts ...Text) Text {
	out := Text{spans: append([]span(nil), t.spans...)}
	for _, p := range parts {
		out.spans = append(out.spans, p.spans...)
	}
	return out
}

// sgr builds the escape prefix for a span. Colors are dropped when
// colored is false.
func (s span) sgr(colored bool) string {
	var params []string
	for _, sp := range styleParams {
		if s.style&sp.style != 0 {
			params = append(params, strconv.Itoa(sp.param))
		}
	}
	if colored {
		if p := s.fg.fg(); p >= 0 {
			params = append(params, strconv.Itoa(p))
		}
		if p := s.bg.bg(); p >= 0 {
			params = append(params, strconv.Itoa(p))
		}
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

func (t Text) render(colored bool) string {
	var b strings.Builder
	for _, s := range t.spans {
		prefix := s.sgr(colored)
		b.WriteString(prefix)
		b.WriteString(s.text)
		if prefix != "" {
			b.WriteString("\x1b[0m")
		}
	}
	return b.String()
}

// String renders the full color-and-style form.
func (t Text) String() string { return t.render(true) }

// StyleOnly renders with text attributes but no colors.
func (t Text) StyleOnly() string { return t.render(false) }

// Plain renders the raw text with no escape codes.
func (t Text) Plain() string {
	var b strings.Builder
	for _, s := range t.spans {
		b.WriteString(s.text)
	}
	return b.String()
}

// Render renders according to the display mode. Unknown modes render
// in color.
func (t Text) Render(m Mode) string {
	switch m {
	case ModeStyle:
		return t.StyleOnly()
	case ModePlain:
		return t.Plain()
	}
	return t.String()
}

// Width returns the printable cell width of the text.
func (t Text) Width() int { return Width(t.Plain()) }

// Width returns the printable cell width of s, skipping ANSI escape
// sequences.
func Width(s string) int {
	w := 0
	for i := 0; i < len(s); {
		if s[i] == 0x1b {
			// CSI sequence: ESC [ params final-byte
			j := i + 1
			if j < len(s) && s[j] == '[' {
				j++
				for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
					j++
				}
				if j < len(s) {
					j++
				}
			}
			i = j
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w += runewidth.RuneWidth(r)
		i += size
	}
	return w
}
