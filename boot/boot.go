// Package boot types the start-up messages one after another before the
// terminal becomes interactive.
package boot

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/typewriter"
)

const (
	Speed    = 20 * time.Millisecond
	Trailing = 300 * time.Millisecond
	Marker   = "[ OK ]"
)

type State int

const (
	Booting State = iota
	Typing
	Pause
	Finishing
	Complete
)

func (it State) String() string {
	switch it {
	case Booting:
		return "booting"
	case Typing:
		return "typing"
	case Pause:
		return "pause"
	case Finishing:
		return "finishing"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("state(%d)", int(it))
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// CompleteMsg is sent once, after the trailing delay of the last message.
type CompleteMsg struct {
	ID int
}

type resumeMsg struct {
	id    int
	index int
}

type finishMsg struct {
	id int
}

// canTransition only lets the sequence move forward.
func canTransition(from, to State) bool {
	switch from {
	case Booting:
		return to == Typing || to == Finishing || to == Complete
	case Typing:
		return to == Pause || to == Typing || to == Finishing || to == Complete
	case Pause:
		return to == Typing || to == Complete
	case Finishing:
		return to == Complete
	default:
		return false
	}
}

// Line is how one boot message reads on screen.
func Line(message string) content.Node {
	return content.Wrap(content.Line,
		content.Wrap(content.Success, content.Text(Marker)),
		content.Text(" "+message),
	)
}

type Model struct {
	Messages []string
	Pause    time.Duration
	Trailing time.Duration

	id     int
	state  State
	index  int
	writer typewriter.Model
}

// New prepares a sequence; nothing runs until Init.
func New(messages []string, speed, pause time.Duration) Model {
	if speed <= 0 {
		speed = Speed
	}
	return Model{
		Messages: messages,
		Pause:    pause,
		Trailing: Trailing,
		id:       nextID(),
		writer:   typewriter.New(speed),
	}
}

func (m *Model) ID() int {
	return m.id
}

func (m *Model) State() State {
	return m.state
}

// Index is the message currently typed, or typed last.
func (m *Model) Index() int {
	return m.index
}

// Writer is the typewriter of the live message.
func (m *Model) Writer() typewriter.Model {
	return m.writer
}

func (m *Model) Done() bool {
	return m.state == Complete
}

func (m *Model) moveTo(state State) bool {
	if !canTransition(m.state, state) {
		return false
	}
	m.state = state
	return true
}

func (m *Model) Init() tea.Cmd {
	if m.state != Booting {
		return nil
	}
	if len(m.Messages) == 0 {
		return m.finish()
	}
	return m.typeMessage(0)
}

func (m *Model) typeMessage(index int) tea.Cmd {
	if !m.moveTo(Typing) {
		return nil
	}
	m.index = index
	var cmd tea.Cmd
	m.writer, cmd = m.writer.SetContent(Line(m.Messages[index]))
	return cmd
}

func (m *Model) finish() tea.Cmd {
	if !m.moveTo(Finishing) {
		return nil
	}
	id := m.id
	return tea.Tick(m.Trailing, func(time.Time) tea.Msg {
		return finishMsg{id: id}
	})
}

func (m *Model) complete() tea.Cmd {
	if !m.moveTo(Complete) {
		return nil
	}
	id := m.id
	return func() tea.Msg {
		return CompleteMsg{ID: id}
	}
}

// Skip jumps straight to completion.
func (m *Model) Skip() tea.Cmd {
	if m.state == Complete {
		return nil
	}
	m.writer = m.writer.Clear()
	m.index = len(m.Messages)
	return m.complete()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case typewriter.TickMsg:
		if m.state != Typing {
			return nil
		}
		var cmd tea.Cmd
		m.writer, cmd = m.writer.Update(msg)
		return cmd
	case typewriter.DoneMsg:
		if m.state != Typing || !m.writer.Owns(msg) {
			return nil
		}
		next := m.index + 1
		if next >= len(m.Messages) {
			return m.finish()
		}
		if m.Pause <= 0 {
			return m.typeMessage(next)
		}
		m.moveTo(Pause)
		id := m.id
		return tea.Tick(m.Pause, func(time.Time) tea.Msg {
			return resumeMsg{id: id, index: next}
		})
	case resumeMsg:
		if msg.id != m.id || m.state != Pause {
			return nil
		}
		return m.typeMessage(msg.index)
	case finishMsg:
		if msg.id != m.id || m.state != Finishing {
			return nil
		}
		return m.complete()
	}
	return nil
}

// Output is everything typed so far: finished messages in full and the live
// one as far as it has been revealed.
func (m *Model) Output() content.Node {
	lines := content.Sequence{}
	finished := m.index
	if m.state == Finishing || m.state == Pause || m.state == Complete {
		finished = m.index + 1
	}
	if finished > len(m.Messages) {
		finished = len(m.Messages)
	}
	for _, message := range m.Messages[:finished] {
		lines = append(lines, Line(message))
	}
	if m.state == Typing {
		if live := m.writer.Visible(); live != nil {
			lines = append(lines, live)
		}
	}
	return lines
}

func (m *Model) View() string {
	return content.RenderPlain(m.Output())
}
