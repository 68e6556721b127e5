// Package terminal queries the output device and writes rendered frames to it.
//
// Features:
//   - Character-grid size via TIOCGWINSZ on unix, x/term elsewhere
//   - 128KB buffered frame output, one contiguous block per frame
//   - Optional clear-and-home before a frame
//   - Emergency attribute/cursor reset for crash handlers
//
// Output is plain text plus a handful of ANSI sequences; no terminfo lookup is done.
package terminal
