package interactive

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Links is the focus ring over the quick commands followed by the command
// links of the current output. Activating a target hands its command line
// to Run.
type Links struct {
	Run func(line string) tea.Cmd

	quick   []string
	output  []string
	focused int
}

func NewLinks(quick []string, run func(line string) tea.Cmd) Links {
	return Links{Run: run, quick: quick, focused: -1}
}

func (l *Links) total() int {
	return len(l.quick) + len(l.output)
}

// SetOutput replaces the output links; focus inside the old output is lost.
func (l *Links) SetOutput(commands []string) {
	if l.focused >= len(l.quick) {
		l.focused = -1
	}
	l.output = commands
}

// Reveal updates the output links of the same content as more of it shows;
// focus is kept.
func (l *Links) Reveal(commands []string) {
	l.output = commands
	if l.focused >= l.total() {
		l.focused = -1
	}
}

func (l *Links) Next() {
	if l.total() == 0 {
		return
	}
	l.focused = (l.focused + 1) % l.total()
}

func (l *Links) Prev() {
	if l.total() == 0 {
		return
	}
	if l.focused <= 0 {
		l.focused = l.total() - 1
		return
	}
	l.focused--
}

func (l *Links) Blur() {
	l.focused = -1
}

// Focused is the command line of the focused target.
func (l *Links) Focused() (string, bool) {
	switch {
	case l.focused < 0 || l.focused >= l.total():
		return "", false
	case l.focused < len(l.quick):
		return l.quick[l.focused], true
	default:
		return l.output[l.focused-len(l.quick)], true
	}
}

// QuickFocus is the focused quick command index, or -1.
func (l *Links) QuickFocus() int {
	if l.focused >= 0 && l.focused < len(l.quick) {
		return l.focused
	}
	return -1
}

// OutputFocus is the focused output link index, or -1.
func (l *Links) OutputFocus() int {
	if l.focused >= len(l.quick) && l.focused < l.total() {
		return l.focused - len(l.quick)
	}
	return -1
}

func (l *Links) Activate() tea.Cmd {
	target, ok := l.Focused()
	if !ok || l.Run == nil {
		return nil
	}
	return l.Run(target)
}
