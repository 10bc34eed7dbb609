package interactive

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 3 * time.Second

// ToastType defines the type of toast notification
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Toast represents a notification structure
type Toast struct {
	ID        int64
	Type      ToastType
	Message   string
	StartTime time.Time
	Duration  time.Duration
}

// ToastMsg is sent to trigger a new toast
type ToastMsg struct {
	Type     ToastType
	Message  string
	Duration time.Duration
}

// ToastTimeoutMsg is sent when a toast expires
type ToastTimeoutMsg struct {
	ID int64
}

// ShowToast creates a command to show a toast
func ShowToast(msg string, t ToastType) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Type:     t,
			Message:  msg,
			Duration: toastDuration,
		}
	}
}

// ShowErrorToast is a helper for error messages
func ShowErrorToast(msg string) tea.Cmd {
	return ShowToast(msg, ToastError)
}

// ShowWarningToast is a helper for warning messages
func ShowWarningToast(msg string) tea.Cmd {
	return ShowToast(msg, ToastWarning)
}

func (t *Toast) timeout() tea.Cmd {
	id := t.ID
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return ToastTimeoutMsg{ID: id}
	})
}

func (s *Styles) renderToast(t *Toast) string {
	if t == nil {
		return ""
	}
	switch t.Type {
	case ToastSuccess:
		return s.ToastSuccess.Render(t.Message)
	case ToastWarning:
		return s.ToastWarning.Render(t.Message)
	case ToastError:
		return s.ToastError.Render(t.Message)
	}
	return s.ToastInfo.Render(t.Message)
}
