package shell

import (
	"strings"
	"testing"

	"github.com/master-bogdan/termfolio/hamlet"
)

func TestScreenRowsCountWrappedLines(t *testing.T) {
	tests := []struct {
		name     string
		frame    string
		width    int
		expected int
	}{
		{"single short line", "hello", 80, 1},
		{"empty frame", "", 80, 1},
		{"two short lines", "one\ntwo", 80, 2},
		{"exactly the width", strings.Repeat("x", 10), 10, 1},
		{"one column over", strings.Repeat("x", 11), 10, 2},
		{"long line among short ones", "a\n" + strings.Repeat("x", 25) + "\nb", 10, 5},
		{"escapes take no columns", "\x1b[92m" + strings.Repeat("x", 10) + "\x1b[0m", 10, 1},
		{"unknown width never wraps", strings.Repeat("x", 500), 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)
			must_be.Equal(tt.expected, screenRows(tt.frame, tt.width))
		})
	}
}
