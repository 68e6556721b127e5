//go:build !unix

package terminal

import (
	"golang.org/x/term"
)

// getSize returns the terminal size for a given fd
func getSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}
