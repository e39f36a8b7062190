package trace

import (
	"strings"

	"termglyph/internal/termstyle"
)

// FrameStyle selects the box drawing character set.
type FrameStyle string

// Box drawing styles.
const (
	FrameLight  FrameStyle = "light"
	FrameDouble FrameStyle = "double"
	FrameHeavy  FrameStyle = "heavy"
)

type frameSet struct {
	topLeft, topRight       string
	bottomLeft, bottomRight string
	horizontal, vertical    string
}

var frames = map[FrameStyle]frameSet{
	FrameLight:  {"╭", "╮", "╰", "╯", "─", "│"},
	FrameDouble: {"╔", "╗", "╚", "╝", "═", "║"},
	FrameHeavy:  {"┏", "┓", "┗", "┛", "━", "┃"},
}

// BoxConfig controls Box output.
type BoxConfig struct {
	// Style is the frame character set; light when empty.
	Style FrameStyle

	// TopIndent shifts the start of the top border right, leaving room
	// for a heading that overlaps the frame.
	TopIndent int

	// RestIndent indents every line below the top border.
	RestIndent int

	// MinWidth is the minimum interior width. Defaults to 50.
	MinWidth int
}

// Box draws a frame around lines. Widths account for escape sequences
// and wide runes. Empty input produces "".
func Box(lines []string, cfg BoxConfig) string {
	frame, ok := frames[cfg.Style]
	if !ok {
		frame = frames[FrameLight]
	}
	if len(lines) == 0 {
		return ""
	}

	width := 0
	for _, line := range lines {
		if w := termstyle.Width(line); w > width {
			width = w
		}
	}
	if width == 0 {
		return ""
	}
	width++
	minWidth := cfg.MinWidth
	if minWidth <= 0 {
		minWidth = 50
	}
	if width < minWidth {
		width = minWidth
	}

	restIndent := cfg.RestIndent
	if restIndent < 0 {
		restIndent = 0
	}
	topIndent := cfg.TopIndent
	if topIndent < 0 {
		topIndent = 0
	}

	var b strings.Builder

	// top border, opened where the heading overlaps it
	if topIndent == 0 {
		b.WriteString(frame.topLeft)
	}
	topRemain := width + restIndent + 1 - topIndent
	if topRemain > 0 {
		b.WriteString(strings.Repeat(frame.horizontal, topRemain))
	}
	if topRemain > -1 {
		b.WriteString(frame.topRight)
	}

	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(pad(restIndent))
		b.WriteString(frame.vertical)
		b.WriteString(line)
		b.WriteString(pad(width - termstyle.Width(line)))
		b.WriteString(frame.vertical)
	}

	b.WriteString("\n")
	b.WriteString(pad(restIndent))
	b.WriteString(frame.bottomLeft)
	b.WriteString(strings.Repeat(frame.horizontal, width))
	b.WriteString(frame.bottomRight)

	return b.String()
}
