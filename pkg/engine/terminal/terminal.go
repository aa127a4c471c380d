// Package terminal probes the size of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the width and height of the terminal on stdout.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, ok := SizeOf(os.Stdout)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// SizeOf returns the size of the terminal behind f and whether f is one
func SizeOf(f *os.File) (width, height int, ok bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Fits reports whether a board of cols x rows character cells fits the
// given terminal size.
func Fits(width, height, cols, rows int) bool {
	return cols <= width && rows <= height
}
