package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("not a terminal")

// Size returns the character dimensions of the terminal attached to f.
func Size(f *os.File) (cols, rows int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%s: %w", f.Name(), ErrNotTerminal)
	}
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get terminal size: %w", err)
	}
	return cols, rows, nil
}
