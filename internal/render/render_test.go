package render

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

// solid builds a uniform test image.
func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Mode
		wantErr  bool
	}{
		{name: "ascii", input: "ascii", expected: ModeASCII},
		{name: "gray", input: "gray", expected: ModeGray},
		{name: "grey alias", input: "grey", expected: ModeGray},
		{name: "half-gray", input: "half-gray", expected: ModeHalfGray},
		{name: "color", input: "COLOR", expected: ModeColor},
		{name: "half-color", input: "half-color", expected: ModeHalfColor},
		{name: "invalid", input: "sepia", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMode(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for _, mode := range Modes {
		parsed, err := ParseMode(mode.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", mode.String(), err)
		}
		if parsed != mode {
			t.Errorf("round trip %v -> %q -> %v", mode, mode.String(), parsed)
		}
	}
}

func TestRenderEmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := Render(img, ModeASCII, Options{}); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestRenderGridShape(t *testing.T) {
	img := solid(8, 8, color.White)

	tests := []struct {
		name     string
		mode     Mode
		opts     Options
		wantRows int
		wantCols int
	}{
		{name: "ascii 4x2", mode: ModeASCII, opts: Options{Width: 4, Height: 2}, wantRows: 2, wantCols: 4},
		{name: "gray 4x2", mode: ModeGray, opts: Options{Width: 4, Height: 2}, wantRows: 2, wantCols: 4},
		{name: "half-gray 4x2", mode: ModeHalfGray, opts: Options{Width: 4, Height: 2}, wantRows: 2, wantCols: 4},
		{name: "color 3x3", mode: ModeColor, opts: Options{Width: 3, Height: 3}, wantRows: 3, wantCols: 3},
		{name: "half-color 3x3", mode: ModeHalfColor, opts: Options{Width: 3, Height: 3}, wantRows: 3, wantCols: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(img, tt.mode, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
			if len(rows) != tt.wantRows {
				t.Fatalf("got %d rows, want %d", len(rows), tt.wantRows)
			}
			for i, row := range rows {
				if got := glyphCount(row, tt.mode); got != tt.wantCols {
					t.Errorf("row %d has %d glyphs, want %d (%q)", i, got, tt.wantCols, row)
				}
			}
		})
	}
}

// glyphCount counts mode glyphs in a row, ignoring escape sequences.
func glyphCount(row string, mode Mode) int {
	switch mode {
	case ModeASCII:
		return len([]rune(row))
	case ModeGray, ModeColor:
		return strings.Count(row, string(upperBlockFull))
	default:
		return strings.Count(row, string(upperBlockHalf))
	}
}

func TestRenderDeterministic(t *testing.T) {
	img := solid(6, 6, color.RGBA{R: 120, G: 80, B: 200, A: 255})
	for _, mode := range Modes {
		a, err := Render(img, mode, Options{Width: 3, Height: 3})
		if err != nil {
			t.Fatal(err)
		}
		b, err := Render(img, mode, Options{Width: 3, Height: 3})
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Errorf("mode %v not deterministic", mode)
		}
	}
}

func TestASCIIBrightnessMonotone(t *testing.T) {
	ramp := []rune(DefaultRamp)
	prev := -1
	for _, lum := range []uint8{0, 30, 80, 120, 180, 220, 255} {
		img := solid(4, 4, color.Gray{Y: lum})
		out, err := Render(img, ModeASCII, Options{Width: 2, Height: 1})
		if err != nil {
			t.Fatal(err)
		}
		ch := []rune(out)[0]
		idx := -1
		for i, r := range ramp {
			if r == ch {
				idx = i
				break
			}
		}
		if idx < 0 {
			t.Fatalf("character %q not in ramp", ch)
		}
		if idx < prev {
			t.Errorf("brightness %d maps to ramp index %d, below previous %d", lum, idx, prev)
		}
		prev = idx
	}
	if prev != len(ramp)-1 {
		t.Errorf("white should map to the densest character, got index %d", prev)
	}
}

func TestASCIIExtremes(t *testing.T) {
	black, err := Render(solid(2, 2, color.Black), ModeASCII, Options{Width: 1, Height: 1})
	if err != nil {
		t.Fatal(err)
	}
	if black != " \n" {
		t.Errorf("black should render the sparsest character, got %q", black)
	}

	white, err := Render(solid(2, 2, color.White), ModeASCII, Options{Width: 1, Height: 1})
	if err != nil {
		t.Fatal(err)
	}
	if white != "@\n" {
		t.Errorf("white should render the densest character, got %q", white)
	}
}

func TestInvert(t *testing.T) {
	img := solid(2, 2, color.White)
	out, err := Render(img, ModeASCII, Options{Width: 1, Height: 1, Invert: true})
	if err != nil {
		t.Fatal(err)
	}
	if out != " \n" {
		t.Errorf("inverted white should render the sparsest character, got %q", out)
	}
}

func TestGrayIndexMonotoneAndBounded(t *testing.T) {
	prev := 231
	for lum := 0; lum <= 255; lum++ {
		idx := grayIndex(lum)
		if idx < 232 || idx > 255 {
			t.Fatalf("grayIndex(%d) = %d out of ANSI grayscale range", lum, idx)
		}
		if idx < prev && prev != 231 {
			t.Errorf("grayIndex(%d) = %d below previous %d", lum, idx, prev)
		}
		prev = idx
	}
	if grayIndex(0) != 232 || grayIndex(255) != 255 {
		t.Errorf("grayIndex endpoints: got %d and %d", grayIndex(0), grayIndex(255))
	}
}

func TestColorEscapeCodes(t *testing.T) {
	img := solid(2, 2, color.RGBA{R: 255, A: 255})
	out, err := Render(img, ModeColor, Options{Width: 1, Height: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\x1b[38;2;255;0;0m") {
		t.Errorf("pure red should emit a truecolor escape, got %q", out)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "\x1b[0m") {
		t.Errorf("styled row should reset, got %q", out)
	}
}

func TestHalfColorPacksTwoPixels(t *testing.T) {
	// top half red, bottom half blue
	img := image.NewRGBA(image.Rect(0, 0, 2, 4))
	for y := 0; y < 4; y++ {
		c := color.RGBA{R: 255, A: 255}
		if y >= 2 {
			c = color.RGBA{B: 255, A: 255}
		}
		for x := 0; x < 2; x++ {
			img.Set(x, y, c)
		}
	}

	out, err := Render(img, ModeHalfColor, Options{Width: 1, Height: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, string(upperBlockHalf)) {
		t.Fatalf("half-color should use the upper half block, got %q", out)
	}
	if !strings.Contains(out, "38;2;255;0;0") {
		t.Errorf("foreground should be the upper color, got %q", out)
	}
	if !strings.Contains(out, "48;2;0;0;255") {
		t.Errorf("background should be the lower color, got %q", out)
	}
}

func TestGridAspect(t *testing.T) {
	// a 10x10 image at width 10: full modes halve rows, half modes
	// keep square sampling
	imgW, imgH := 10, 10
	cols, pixRows := grid(imgW, imgH, ModeASCII, Options{Width: 10})
	if cols != 10 || pixRows != 5 {
		t.Errorf("ascii grid = %dx%d, want 10x5", cols, pixRows)
	}
	cols, pixRows = grid(imgW, imgH, ModeHalfColor, Options{Width: 10})
	if cols != 10 || pixRows != 10 {
		t.Errorf("half-color grid = %dx%d, want 10x10", cols, pixRows)
	}
}

func TestCustomRamp(t *testing.T) {
	out, err := Render(solid(2, 2, color.White), ModeASCII, Options{Width: 1, Height: 1, Ramp: "01"})
	if err != nil {
		t.Fatal(err)
	}
	if out != "1\n" {
		t.Errorf("white with ramp \"01\" should render %q, got %q", "1", out)
	}
}
