package pretty

import (
	"github.com/master-bogdan/termfolio/content"
)

// Styler paints content with the escape codes chosen by Setup, so it paints
// nothing at all on a colorless terminal.
type Styler struct {
	palette map[content.Tag]string
}

func NewStyler() Styler {
	return Styler{palette: map[content.Tag]string{
		content.Heading:    Bold + Cyan,
		content.Subheading: Bold + Cyan,
		content.Accent:     Cyan,
		content.Success:    Green,
		content.Muted:      shade(Color256(245), Grey),
		content.Error:      Red,
		content.Secret:     shade(RGB(255, 121, 198), Magenta),
		content.Link:       Underline + Cyan,
		content.Code:       shade(Color256(221), Yellow),
		content.CodeBlock:  shade(Color256(221), Yellow),
		content.Strong:     Bold,
		content.Emphasis:   Italic,
		content.Focus:      Reverse,
	}}
}

func (it Styler) Paint(tag content.Tag, text string) (string, bool) {
	code, ok := it.palette[tag]
	if !ok || len(code) == 0 || len(text) == 0 {
		return "", false
	}
	return code + text + Reset, true
}

// shade prefers the richer color when the terminal can show it.
func shade(rich, basic string) string {
	if len(rich) > 0 {
		return rich
	}
	return basic
}
