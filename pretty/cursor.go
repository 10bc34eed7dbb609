package pretty

import (
	"os"

	"golang.org/x/term"

	"github.com/master-bogdan/termfolio/common"
)

// Cursor control sequences. They are returned as strings so that callers
// can write them to whatever terminal they own; all of them are empty when
// the session is not interactive.

// MoveUp moves cursor up by n lines (CSI {n}A)
func MoveUp(n int) string {
	if !Interactive || n <= 0 {
		return ""
	}
	return csif("%dA", n)
}

// LineStart moves the cursor to column 1 of the current line.
func LineStart() string {
	if !Interactive {
		return ""
	}
	return "\r"
}

// ClearBelow clears from cursor to end of screen (CSI 0J)
func ClearBelow() string {
	if !Interactive {
		return ""
	}
	return csi("0J")
}

// HideCursor makes the cursor invisible (CSI ?25l)
func HideCursor() string {
	if !Interactive {
		return ""
	}
	return csi("?25l")
}

// ShowCursor makes the cursor visible (CSI ?25h)
func ShowCursor() string {
	if !Interactive {
		return ""
	}
	return csi("?25h")
}

// Redraw returns to the first of the lines previously drawn and clears them.
func Redraw(lines int) string {
	if !Interactive || lines <= 0 {
		return ""
	}
	return MoveUp(lines-1) + LineStart() + ClearBelow()
}

// TerminalWidth returns the terminal width in columns, 80 when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		common.Trace("Failed to get terminal width, using fallback: %v", err)
		return 80
	}
	return width
}
