package boot

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/hamlet"
	"github.com/master-bogdan/termfolio/typewriter"
)

// typeOut ticks the live message to its end and returns the completion.
func typeOut(t *testing.T, m *Model) typewriter.DoneMsg {
	t.Helper()
	for !m.Writer().Complete() {
		writer := m.Writer()
		cmd := m.Update(typewriter.TickMsg{ID: writer.ID(), Tag: writer.Generation()})
		if cmd == nil {
			t.Fatalf("tick chain broke at %d/%d", writer.Revealed(), writer.Total())
		}
		if m.Writer().Complete() {
			return cmd().(typewriter.DoneMsg)
		}
	}
	t.Fatalf("nothing was typing")
	return typewriter.DoneMsg{}
}

func TestSequenceTypesEachMessageInOrder(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	messages := []string{"Loading kernel...", "Mounting filesystems..."}
	m := New(messages, 0, 0)
	must_be.Equal(Booting, m.State())
	wont_be.Nil(m.Init())
	must_be.Equal(Typing, m.State())
	must_be.Equal(0, m.Index())

	m.Update(typeOut(t, &m))
	must_be.Equal(Typing, m.State())
	must_be.Equal(1, m.Index())
	must_be.Equal("[ OK ] Loading kernel...", m.View())

	writer := m.Writer()
	m.Update(typewriter.TickMsg{ID: writer.ID(), Tag: writer.Generation()})
	must_be.Equal("[ OK ] Loading kernel...\n[", m.View())

	cmd := m.Update(typeOut(t, &m))
	wont_be.Nil(cmd)
	must_be.Equal(Finishing, m.State())
	must_be.Equal("[ OK ] Loading kernel...\n[ OK ] Mounting filesystems...", m.View())

	cmd = m.Update(finishMsg{id: m.ID()})
	must_be.Equal(Complete, m.State())
	must_be.Equal(CompleteMsg{ID: m.ID()}, cmd())
	must_be.True(m.Done())

	must_be.Nil(m.Update(finishMsg{id: m.ID()}))
	must_be.Nil(m.Init())
}

func TestPauseBetweenMessages(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	m := New([]string{"one", "two"}, 0, 1)
	m.Init()
	cmd := m.Update(typeOut(t, &m))
	wont_be.Nil(cmd)
	must_be.Equal(Pause, m.State())
	must_be.Equal("[ OK ] one", m.View())

	must_be.Nil(m.Update(resumeMsg{id: m.ID() + 1, index: 1}))
	must_be.Equal(Pause, m.State())

	wont_be.Nil(m.Update(resumeMsg{id: m.ID(), index: 1}))
	must_be.Equal(Typing, m.State())
	must_be.Equal(1, m.Index())
}

func TestStaleMessagesAreIgnored(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	m := New([]string{"one"}, 0, 0)
	other := New([]string{"one"}, 0, 0)
	m.Init()
	other.Init()

	must_be.Nil(m.Update(finishMsg{id: m.ID()}))
	must_be.Equal(Typing, m.State())

	writer := other.Writer()
	must_be.Nil(m.Update(typewriter.TickMsg{ID: writer.ID(), Tag: writer.Generation()}))
	must_be.Nil(m.Update(typewriter.DoneMsg{ID: writer.ID(), Tag: writer.Generation()}))
	must_be.Equal(0, m.Writer().Revealed())
}

func TestEmptySequenceOnlyWaitsTrailingDelay(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	m := New(nil, 0, 0)
	wont_be.Nil(m.Init())
	must_be.Equal(Finishing, m.State())
	must_be.Equal("", m.View())
	must_be.Equal(CompleteMsg{ID: m.ID()}, m.Update(finishMsg{id: m.ID()})())
}

func TestSkipCompletesOnce(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	messages := []string{"one", "two", "three"}
	m := New(messages, 0, 0)
	m.Init()
	pending := m.Writer()

	cmd := m.Skip()
	wont_be.Nil(cmd)
	var message tea.Msg = cmd()
	must_be.Equal(CompleteMsg{ID: m.ID()}, message)
	must_be.Equal("[ OK ] one[ OK ] two[ OK ] three", content.PlainText(m.Output()))

	must_be.Nil(m.Skip())
	must_be.Nil(m.Update(typewriter.TickMsg{ID: pending.ID(), Tag: pending.Generation()}))
	must_be.Nil(m.Update(finishMsg{id: m.ID()}))
}

func TestStatesOnlyMoveForward(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	must_be.True(canTransition(Booting, Typing))
	must_be.True(canTransition(Typing, Pause))
	must_be.True(canTransition(Pause, Typing))
	must_be.True(canTransition(Finishing, Complete))
	must_be.True(!canTransition(Finishing, Typing))
	must_be.True(!canTransition(Complete, Booting))
	must_be.True(!canTransition(Pause, Finishing))
	must_be.Equal("finishing", Finishing.String())
}
