package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"termglyph/internal/termstyle"
)

// Mode selects the glyph and color mapping.
type Mode int

// Render modes.
const (
	ModeASCII Mode = iota
	ModeGray
	ModeHalfGray
	ModeColor
	ModeHalfColor
)

// Modes lists every render mode in display order.
var Modes = []Mode{ModeASCII, ModeGray, ModeHalfGray, ModeColor, ModeHalfColor}

// ParseMode parses a render mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "ascii":
		return ModeASCII, nil
	case "gray", "grey":
		return ModeGray, nil
	case "half-gray", "half-grey", "halfgray":
		return ModeHalfGray, nil
	case "color", "colour":
		return ModeColor, nil
	case "half-color", "half-colour", "halfcolor":
		return ModeHalfColor, nil
	}
	return ModeASCII, fmt.Errorf("invalid render mode %q", s)
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeASCII:
		return "ascii"
	case ModeGray:
		return "gray"
	case ModeHalfGray:
		return "half-gray"
	case ModeColor:
		return "color"
	case ModeHalfColor:
		return "half-color"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// halfBlock reports whether the mode packs two pixels into each cell
// with the upper half block.
func (m Mode) halfBlock() bool {
	return m == ModeHalfGray || m == ModeHalfColor
}

// DefaultRamp is the density ramp for ascii mode, darkest first.
const DefaultRamp = " .:-=+*#%@"

const (
	upperBlockFull = '█'
	upperBlockHalf = '▀'
)

// Options controls rendering.
type Options struct {
	// Width and Height are the target cell grid. Zero fits the
	// terminal, falling back to 80x24 when the size cannot be probed.
	Width  int
	Height int

	// Ramp is the ascii density ramp, darkest first. Empty uses
	// DefaultRamp.
	Ramp string

	// Invert flips luminance in the brightness-mapped modes (ascii,
	// gray, half-gray).
	Invert bool
}

// Render converts img to terminal glyphs, one cell per pixel block,
// rows separated by newlines.
func Render(img image.Image, mode Mode, opts Options) (string, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", fmt.Errorf("cannot render empty image")
	}

	cols, pixRows := grid(bounds.Dx(), bounds.Dy(), mode, opts)
	resized := imaging.Resize(img, cols, pixRows, imaging.Lanczos)

	ramp := []rune(opts.Ramp)
	if len(ramp) == 0 {
		ramp = []rune(DefaultRamp)
	}

	var b strings.Builder
	step := 1
	if mode.halfBlock() {
		step = 2
	}
	for y := 0; y < pixRows; y += step {
		renderRow(&b, resized, y, cols, mode, ramp, opts.Invert)
	}
	return b.String(), nil
}

// Fprint renders img to w.
func Fprint(w io.Writer, img image.Image, mode Mode, opts Options) error {
	s, err := Render(img, mode, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Print renders img to the process terminal.
func Print(img image.Image, mode Mode, opts Options) error {
	return Fprint(termstyle.Output(), img, mode, opts)
}

// grid computes the target pixel grid: cols cells wide, pixRows pixel
// rows tall (twice the cell rows in half-block modes).
func grid(imgW, imgH int, mode Mode, opts Options) (cols, pixRows int) {
	cols = opts.Width
	rows := opts.Height

	if cols <= 0 {
		termW, _ := terminalSize()
		cols = termW
		if imgW < cols {
			cols = imgW
		}
	}
	if cols < 1 {
		cols = 1
	}

	if rows <= 0 {
		// preserve aspect; full-cell modes halve vertically for the
		// 2:1 cell aspect
		pixRows = cols * imgH / imgW
		if !mode.halfBlock() {
			pixRows /= 2
		}
	} else {
		pixRows = rows
		if mode.halfBlock() {
			pixRows *= 2
		}
	}
	if pixRows < 1 {
		pixRows = 1
	}
	if mode.halfBlock() && pixRows%2 != 0 {
		pixRows++
	}
	return cols, pixRows
}

func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w, h
	}
	return 80, 24
}

func renderRow(b *strings.Builder, img image.Image, y, cols int, mode Mode, ramp []rune, invert bool) {
	min := img.Bounds().Min
	styled := false
	for x := 0; x < cols; x++ {
		upper := img.At(min.X+x, min.Y+y)
		switch mode {
		case ModeASCII:
			b.WriteRune(ramp[rampIndex(luminance(upper, invert), len(ramp))])
		case ModeGray:
			fmt.Fprintf(b, "\x1b[38;5;%dm%c", grayIndex(luminance(upper, invert)), upperBlockFull)
			styled = true
		case ModeHalfGray:
			lower := img.At(min.X+x, min.Y+y+1)
			fmt.Fprintf(b, "\x1b[38;5;%d;48;5;%dm%c",
				grayIndex(luminance(upper, invert)),
				grayIndex(luminance(lower, invert)),
				upperBlockHalf)
			styled = true
		case ModeColor:
			r, g, bl := rgb8(upper)
			fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm%c", r, g, bl, upperBlockFull)
			styled = true
		case ModeHalfColor:
			lower := img.At(min.X+x, min.Y+y+1)
			ur, ug, ub := rgb8(upper)
			lr, lg, lb := rgb8(lower)
			fmt.Fprintf(b, "\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm%c",
				ur, ug, ub, lr, lg, lb, upperBlockHalf)
			styled = true
		}
	}
	if styled {
		b.WriteString("\x1b[0m")
	}
	b.WriteByte('\n')
}

// luminance returns the Rec.601 luma of c on the 0-255 scale.
func luminance(c color.Color, invert bool) int {
	r, g, b := rgb8(c)
	lum := (299*r + 587*g + 114*b) / 1000
	if invert {
		lum = 255 - lum
	}
	return lum
}

func rgb8(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

// rampIndex maps luminance onto a ramp of n characters, monotone in
// lum.
func rampIndex(lum, n int) int {
	return lum * (n - 1) / 255
}

// grayIndex maps luminance onto the ANSI-256 grayscale ramp
// (232 darkest to 255 lightest), monotone in lum.
func grayIndex(lum int) int {
	return 232 + lum*23/255
}
