package input

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// MakeRaw puts the terminal behind fd into raw mode and returns a function
// that restores the previous mode.
func MakeRaw(fd int) (func() error, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}

// ReadCode reads one keypress from a raw-mode terminal stream and returns its
// binding code ("arrow_up", "space", "q", ...). Unknown keys yield "".
//
// A terminal writes an escape sequence in one go, so an ESC with nothing
// buffered behind it is reported as "escape" straight away when r is a
// *bufio.Reader.
func ReadCode(r io.ByteScanner) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		return readEscape(r)
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\r' || b1 == '\n':
		return "enter", nil
	case b1 == ' ':
		return "space", nil
	case b1 == 127 || b1 == 8:
		return "backspace", nil
	case b1 >= 'A' && b1 <= 'Z':
		return string(rune(b1 + ('a' - 'A'))), nil
	case b1 > 32 && b1 < 127:
		return string(rune(b1)), nil
	}
	return "", nil
}

// readEscape decodes the remainder of an escape sequence.
// Both CSI (ESC [) and SS3 (ESC O) arrow forms are recognised.
func readEscape(r io.ByteScanner) (string, error) {
	if b, ok := r.(interface{ Buffered() int }); ok && b.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := r.ReadByte()
	if err != nil {
		// A lone ESC at end of stream
		if err == io.EOF {
			return "escape", nil
		}
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		// Not an introducer: leave it for the next read
		if err := r.UnreadByte(); err != nil {
			return "", err
		}
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}
