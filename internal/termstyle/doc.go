// Package termstyle builds colored and styled terminal text.
//
// A Text is a sequence of styled spans that can be rendered three ways:
// full color, style-only (bold/underline/etc. without colors), or plain.
// The package also owns the terminal output writer, which strips escape
// codes when stdout is not a tty and handles Windows consoles through
// go-colorable.
package termstyle
