package interactive

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds all the key bindings of the terminal. Printable keys belong
// to the prompt, so every binding here is a control or navigation key.
type KeyMap struct {
	Quit     key.Binding
	Submit   key.Binding
	Complete key.Binding
	Skip     key.Binding

	// Focus moves across quick commands and links in the output
	NextLink key.Binding
	PrevLink key.Binding

	// Prompt history
	Older key.Binding
	Newer key.Binding

	PageUp   key.Binding
	PageDown key.Binding

	Logs key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Skip: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "skip"),
		),
		NextLink: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next link"),
		),
		PrevLink: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "prev link"),
		),
		Older: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "older"),
		),
		Newer: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "newer"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Logs: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "logs"),
		),
	}
}

// keys is the global key map instance
var keys = DefaultKeyMap()
