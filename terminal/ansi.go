package terminal

// Pre-allocated ANSI sequence fragments
var (
	csiClear = []byte("\x1b[2J\x1b[H")
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorShow = []byte("\x1b[?25h")

	// DECAWM: Auto-Wrap Mode
	// Frames rely on wrap at the right edge since rows carry no delimiter
	csiAutoWrapOn = []byte("\x1b[?7h")
)
