package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the file is not attached to a terminal
var ErrNotTerminal = errors.New("terminal: not a terminal")

// DefaultSize is the fallback grid when the device cannot be queried
var DefaultSize = Size{Width: 80, Height: 24}

// Size is a character-grid dimension pair
type Size struct {
	Width  int
	Height int
}

// String formats the size as WxH
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// QuerySize returns the current character grid of the terminal behind f
// Queried once per call; later resizes are not tracked
func QuerySize(f *os.File) (Size, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Size{}, fmt.Errorf("%w: %s", ErrNotTerminal, f.Name())
	}
	w, h, err := getSize(fd)
	if err != nil {
		return Size{}, fmt.Errorf("terminal size: %w", err)
	}
	return Size{Width: w, Height: h}, nil
}

// SizeOr returns QuerySize, or fallback when the query fails or reports an empty grid
func SizeOr(f *os.File, fallback Size) Size {
	s, err := QuerySize(f)
	if err != nil || s.Width <= 0 || s.Height <= 0 {
		return fallback
	}
	return s
}
