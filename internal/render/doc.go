// Package render converts decoded images into terminal glyphs.
//
// Five modes are supported:
//   - ascii: density ramp characters, no color
//   - gray: full-cell blocks on the ANSI-256 grayscale ramp
//   - half-gray: half-block cells, two grayscale pixels per cell
//   - color: full-cell truecolor blocks
//   - half-color: half-block cells, two truecolor pixels per cell
//
// Images are fitted to the terminal (or an explicit cell grid) with
// Lanczos resampling; full-cell modes halve the vertical sampling to
// compensate for the 2:1 aspect of terminal cells.
package render
