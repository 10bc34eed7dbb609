// Package typewriter reveals a content tree one character per tick.
package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/master-bogdan/termfolio/content"
)

// DefaultSpeed is the reveal interval for command output.
const DefaultSpeed = 15 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances the reveal of the model with the matching ID and tag.
type TickMsg struct {
	ID  int
	Tag int
}

// DoneMsg is sent once when a piece of content is fully revealed. Tag is the
// generation of the content that completed.
type DoneMsg struct {
	ID  int
	Tag int
}

// Model is a bubbletea component. Every call to SetContent starts a new
// generation; ticks from older generations are dropped and never rescheduled.
type Model struct {
	Speed time.Duration

	id       int
	tag      int
	node     content.Node
	total    int
	revealed int
	complete bool
}

func New(speed time.Duration) Model {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return Model{Speed: speed, id: nextID(), complete: true}
}

func (m Model) ID() int {
	return m.id
}

func (m Model) Generation() int {
	return m.tag
}

func (m Model) Content() content.Node {
	return m.node
}

func (m Model) Revealed() int {
	return m.revealed
}

func (m Model) Total() int {
	return m.total
}

func (m Model) Complete() bool {
	return m.complete
}

// Owns tells if a DoneMsg belongs to the current content of this model.
func (m Model) Owns(msg DoneMsg) bool {
	return msg.ID == m.id && msg.Tag == m.tag
}

// SetContent replaces the content and restarts the reveal from zero.
func (m Model) SetContent(node content.Node) (Model, tea.Cmd) {
	m.tag++
	m.node = node
	m.total = content.Count(node)
	m.revealed = 0
	m.complete = false
	if m.total == 0 {
		m.complete = true
		return m, m.done()
	}
	return m, m.tick()
}

// Skip reveals the rest of the content at once.
func (m Model) Skip() (Model, tea.Cmd) {
	if m.complete {
		return m, nil
	}
	m.tag++
	m.revealed = m.total
	m.complete = true
	return m, m.done()
}

// Clear drops the content without a completion message.
func (m Model) Clear() Model {
	m.tag++
	m.node = nil
	m.total = 0
	m.revealed = 0
	m.complete = true
	return m
}

// Init implements tea.Model for standalone use.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || tick.Tag != m.tag || m.complete {
		return m, nil
	}
	m.revealed++
	if m.revealed >= m.total {
		m.revealed = m.total
		m.complete = true
		return m, m.done()
	}
	return m, m.tick()
}

// Visible is the original tree once complete, else the revealed prefix.
func (m Model) Visible() content.Node {
	if m.node == nil {
		return nil
	}
	if m.complete {
		return m.node
	}
	visible, _ := content.Slice(m.node, m.revealed)
	return visible
}

// View renders the visible part as plain text.
func (m Model) View() string {
	visible := m.Visible()
	if visible == nil {
		return ""
	}
	return content.RenderPlain(visible)
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.Speed, func(time.Time) tea.Msg {
		return TickMsg{ID: id, Tag: tag}
	})
}

func (m Model) done() tea.Cmd {
	id, tag := m.id, m.tag
	return func() tea.Msg {
		return DoneMsg{ID: id, Tag: tag}
	}
}
