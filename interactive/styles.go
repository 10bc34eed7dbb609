package interactive

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/master-bogdan/termfolio/content"
)

// Styles holds all the lipgloss styles of the terminal, derived from one
// Theme.
type Styles struct {
	theme Theme

	// Frame
	Frame   lipgloss.Style
	Divider lipgloss.Style

	// Banner
	Banner  lipgloss.Style
	Tagline lipgloss.Style
	Word    lipgloss.Style

	// Quick commands
	QuickLabel   lipgloss.Style
	QuickItem    lipgloss.Style
	QuickFocused lipgloss.Style

	// Prompt and output
	Prompt lipgloss.Style
	Input  lipgloss.Style
	Echo   lipgloss.Style
	Text   lipgloss.Style
	Subtle lipgloss.Style

	// Menu bar
	MenuKey       lipgloss.Style
	MenuDesc      lipgloss.Style
	MenuSeparator lipgloss.Style

	// Log lines and toasts
	ListItem     lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Content tags
	tags map[content.Tag]lipgloss.Style
}

// NewStyles creates styles for the classic theme.
func NewStyles() *Styles {
	return NewStylesWithTheme(ClassicTheme())
}

// NewStylesWithTheme creates styles using a specific theme
func NewStylesWithTheme(theme Theme) *Styles {
	chip := lipgloss.NewStyle().Padding(0, 1)
	toast := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return &Styles{
		theme: theme,

		Frame: lipgloss.NewStyle().
			Foreground(theme.Text).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Banner: lipgloss.NewStyle().
			Foreground(theme.Banner),

		Tagline: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Word: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		QuickLabel: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		QuickItem: chip.
			Foreground(theme.Banner),

		QuickFocused: chip.
			Bold(true).
			Foreground(theme.Success).
			Background(theme.Highlight),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Prompt),

		Input: lipgloss.NewStyle().
			Foreground(theme.Text),

		Echo: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Text: lipgloss.NewStyle().
			Foreground(theme.Text),

		Subtle: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		MenuKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		MenuDesc: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		MenuSeparator: lipgloss.NewStyle().
			Foreground(theme.Border),

		ListItem: lipgloss.NewStyle().
			Foreground(theme.Text),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Secret),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		ToastInfo:    toast.Foreground(theme.Background).Background(theme.Accent),
		ToastSuccess: toast.Foreground(theme.Background).Background(theme.Success),
		ToastWarning: toast.Foreground(theme.Background).Background(theme.Secret),
		ToastError:   toast.Foreground(theme.Background).Background(theme.Error),

		tags: map[content.Tag]lipgloss.Style{
			content.Heading:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(theme.Accent),
			content.Subheading: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
			content.Accent:     lipgloss.NewStyle().Foreground(theme.Accent),
			content.Success:    lipgloss.NewStyle().Foreground(theme.Success),
			content.Muted:      lipgloss.NewStyle().Foreground(theme.TextMuted),
			content.Error:      lipgloss.NewStyle().Foreground(theme.Error),
			content.Secret:     lipgloss.NewStyle().Foreground(theme.Secret),
			content.Link:       lipgloss.NewStyle().Underline(true).Foreground(theme.Accent),
			content.Code:       lipgloss.NewStyle().Foreground(theme.Secret),
			content.CodeBlock:  lipgloss.NewStyle().Foreground(theme.Success),
			content.Strong:     lipgloss.NewStyle().Bold(true),
			content.Emphasis:   lipgloss.NewStyle().Italic(true),
			content.Focus:      lipgloss.NewStyle().Reverse(true).Foreground(theme.Success),
		},
	}
}

func (s *Styles) Theme() Theme {
	return s.theme
}

// Paint implements content.Styler
func (s *Styles) Paint(tag content.Tag, text string) (string, bool) {
	style, ok := s.tags[tag]
	if !ok {
		return "", false
	}
	return style.Render(text), true
}
