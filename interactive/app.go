package interactive

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/master-bogdan/termfolio/boot"
	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/logbuf"
	"github.com/master-bogdan/termfolio/site"
	"github.com/master-bogdan/termfolio/typewriter"
)

// HelpDelay is the pause between the end of the boot and the first help.
const HelpDelay = 500 * time.Millisecond

// Phase of the terminal; it only moves from boot to ready.
type Phase int

const (
	PhaseBoot Phase = iota
	PhaseReady
)

// helpMsg shows help unless another command ran since it was scheduled.
type helpMsg struct {
	generation int
}

// logsChangedMsg redraws the log view after new entries arrived.
type logsChangedMsg struct{}

type Options struct {
	Registry  *commands.Registry
	Profile   site.Profile
	Theme     Theme
	Speed     time.Duration
	BootSpeed time.Duration
	BootPause time.Duration
	SkipBoot  bool
	Clock     func() time.Time
	Logs      *logbuf.LogBuffer
}

// App is the main application model for the interactive TUI
type App struct {
	options Options
	styles  *Styles

	phase   Phase
	boot    boot.Model
	spinner spinner.Model
	banner  Banner
	links   Links
	prompt  textinput.Model
	output  viewport.Model
	writer  typewriter.Model
	history *History

	echo       string
	generation int
	toast      *Toast
	toastSeq   int64
	showLogs   bool
	width      int
	height     int
	quitting   bool
}

// NewApp creates a new interactive application
func NewApp(options Options) *App {
	if options.Clock == nil {
		options.Clock = time.Now
	}
	if options.Logs == nil {
		options.Logs = logbuf.NewLogBuffer(200)
	}
	if len(options.Theme.Name) == 0 {
		options.Theme = ClassicTheme()
	}
	styles := NewStylesWithTheme(options.Theme)

	prompt := textinput.New()
	prompt.Prompt = ""
	prompt.Placeholder = "type a command, try 'help'"
	prompt.CharLimit = 256
	prompt.TextStyle = styles.Input
	prompt.PlaceholderStyle = styles.Subtle

	busy := spinner.New()
	busy.Spinner = spinner.Dot
	busy.Style = styles.Subtle

	profile := options.Profile
	app := &App{
		options: options,
		styles:  styles,
		boot:    boot.New(profile.Boot, options.BootSpeed, options.BootPause),
		spinner: busy,
		banner:  NewBanner(profile.Banner, profile.Name, profile.Words),
		prompt:  prompt,
		output:  viewport.New(78, 10),
		writer:  typewriter.New(options.Speed),
		history: NewHistory(),
		width:   80,
		height:  24,
	}
	app.links = NewLinks(options.Registry.Visible(), app.run)
	app.layout()
	return app
}

func (a *App) Phase() Phase {
	return a.phase
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.options.SkipBoot {
		return a.ready()
	}
	return tea.Batch(a.boot.Init(), a.spinner.Tick)
}

func (a *App) ready() tea.Cmd {
	if a.phase == PhaseReady {
		return nil
	}
	a.phase = PhaseReady
	a.layout()
	var started tea.Cmd
	a.banner, started = a.banner.Start()
	return tea.Batch(started, a.prompt.Focus(), a.helpAfter(HelpDelay))
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		a.refresh()
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case typewriter.TickMsg:
		booting := a.boot.Update(msg)
		a.writer, cmd = a.writer.Update(msg)
		if cmd != nil {
			a.refresh()
		}
		return a, tea.Batch(booting, cmd)

	case typewriter.DoneMsg:
		if a.writer.Owns(msg) {
			a.refresh()
			return a, nil
		}
		return a, a.boot.Update(msg)

	case boot.CompleteMsg:
		if msg.ID != a.boot.ID() {
			return a, nil
		}
		return a, a.ready()

	case helpMsg:
		if msg.generation != a.generation || a.phase != PhaseReady {
			return a, nil
		}
		return a, a.show(a.options.Registry.Help(a.options.Clock()))

	case spinner.TickMsg:
		if a.phase != PhaseBoot {
			return a, nil
		}
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case wordTickMsg:
		a.banner, cmd = a.banner.Update(msg)
		return a, cmd

	case ToastMsg:
		a.toastSeq++
		a.toast = &Toast{
			ID:        a.toastSeq,
			Type:      msg.Type,
			Message:   msg.Message,
			StartTime: a.options.Clock(),
			Duration:  msg.Duration,
		}
		return a, a.toast.timeout()

	case ToastTimeoutMsg:
		if a.toast != nil && a.toast.ID == msg.ID {
			a.toast = nil
		}
		return a, nil

	case logsChangedMsg:
		return a, nil
	}

	// cursor blinks and the like belong to the prompt
	a.prompt, cmd = a.prompt.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit
	}
	if a.phase == PhaseBoot {
		if key.Matches(msg, keys.Skip) {
			return a.boot.Skip()
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Submit):
		line := a.prompt.Value()
		a.prompt.Reset()
		if len(strings.TrimSpace(line)) == 0 {
			return a.links.Activate()
		}
		a.links.Blur()
		return a.run(line)

	case key.Matches(msg, keys.Complete):
		return a.complete()

	case key.Matches(msg, keys.Skip):
		if a.writer.Complete() {
			a.links.Blur()
			a.refresh()
			return nil
		}
		var cmd tea.Cmd
		a.writer, cmd = a.writer.Skip()
		a.refresh()
		return cmd

	case key.Matches(msg, keys.NextLink):
		a.links.Next()
		a.refresh()
		return nil

	case key.Matches(msg, keys.PrevLink):
		a.links.Prev()
		a.refresh()
		return nil

	case key.Matches(msg, keys.Older):
		if line, ok := a.history.Older(); ok {
			a.prompt.SetValue(line)
			a.prompt.CursorEnd()
		}
		return nil

	case key.Matches(msg, keys.Newer):
		if line, ok := a.history.Newer(); ok {
			a.prompt.SetValue(line)
			a.prompt.CursorEnd()
		}
		return nil

	case key.Matches(msg, keys.PageUp):
		a.output.HalfViewUp()
		return nil

	case key.Matches(msg, keys.PageDown):
		a.output.HalfViewDown()
		return nil

	case key.Matches(msg, keys.Logs):
		a.showLogs = !a.showLogs
		return nil
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return cmd
}

// run is the single entry point for command lines, typed or activated.
func (a *App) run(line string) tea.Cmd {
	result := a.options.Registry.Dispatch(line, a.options.Clock())
	if result.Kind == commands.Blank {
		return nil
	}
	a.history.Add(strings.TrimSpace(line))
	a.generation++
	common.Trace("Terminal ran %q as %v.", line, result.Kind)

	if result.Kind == commands.Clear {
		a.echo = ""
		a.writer = a.writer.Clear()
		a.links.SetOutput(nil)
		a.refresh()
		return a.helpAfter(commands.ClearDelay)
	}
	return a.show(result.Output)
}

func (a *App) show(output *commands.Output) tea.Cmd {
	a.echo = output.Command
	a.links.SetOutput(nil)
	var cmd tea.Cmd
	a.writer, cmd = a.writer.SetContent(output.Output)
	a.output.GotoTop()
	a.refresh()
	return cmd
}

func (a *App) helpAfter(delay time.Duration) tea.Cmd {
	generation := a.generation
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return helpMsg{generation: generation}
	})
}

func (a *App) complete() tea.Cmd {
	value := a.prompt.Value()
	if strings.ContainsAny(value, " \t") {
		return nil
	}
	matches := a.options.Registry.Complete(value)
	switch len(matches) {
	case 0:
		return nil
	case 1:
		if matches[0] == value {
			return nil
		}
		a.prompt.SetValue(matches[0])
		a.prompt.CursorEnd()
		return ShowToast("completed "+matches[0], ToastSuccess)
	}
	if shared := commonPrefix(matches); len(shared) > len(value) {
		a.prompt.SetValue(shared)
		a.prompt.CursorEnd()
	}
	return ShowToast(strings.Join(matches, "  "), ToastInfo)
}

func commonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := words[0]
	for _, word := range words[1:] {
		for !strings.HasPrefix(word, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

func (a *App) innerWidth() int {
	if a.width < 12 {
		return 10
	}
	return a.width - 2
}

func (a *App) layout() {
	inner := a.innerWidth()
	a.prompt.Width = inner - lipgloss.Width(a.options.Profile.Prompt.String()) - 2
	chrome := lipgloss.Height(a.banner.View(a.styles, inner)) + 4
	height := a.height - chrome
	if height < 3 {
		height = 3
	}
	a.output.Width = inner
	a.output.Height = height
}

// refresh re-renders the output pane from the typewriter.
func (a *App) refresh() {
	var b strings.Builder
	if len(a.echo) > 0 {
		b.WriteString(a.styles.Echo.Render("$ " + a.echo))
		b.WriteString("\n")
	}
	visible := a.writer.Visible()
	if visible != nil {
		a.links.Reveal(content.Commands(visible))
		b.WriteString(content.Render(visible, content.Options{
			Styler:  a.styles,
			Focused: a.links.OutputFocus(),
			Hrefs:   true,
		}))
	}
	a.output.SetContent(b.String())
	if !a.writer.Complete() {
		a.output.GotoBottom()
	}
}

// View implements tea.Model
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.phase == PhaseBoot {
		booted := content.Render(a.boot.Output(), content.Options{Styler: a.styles, Focused: -1})
		return a.styles.Frame.Render(booted + "\n" + a.spinner.View())
	}

	inner := a.innerWidth()
	body := a.output.View()
	if a.showLogs {
		body = lipgloss.NewStyle().Height(a.output.Height).Render(RenderLogBuffer(a.options.Logs, a.styles, a.output.Height, true))
	}
	return a.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.banner.View(a.styles, inner),
		a.renderQuick(),
		a.styles.Divider.Render(strings.Repeat("─", inner)),
		body,
		a.renderPrompt(),
		a.renderMenu(),
	))
}

func (a *App) renderQuick() string {
	parts := []string{a.styles.QuickLabel.Render("Quick:")}
	focused := a.links.QuickFocus()
	for at, name := range a.links.quick {
		if at == focused {
			parts = append(parts, a.styles.QuickFocused.Render(name))
			continue
		}
		parts = append(parts, a.styles.QuickItem.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderPrompt() string {
	return a.styles.Prompt.Render(a.options.Profile.Prompt.String()) + " " + a.prompt.View()
}

func (a *App) renderMenu() string {
	if a.toast != nil {
		return a.styles.renderToast(a.toast)
	}
	var parts []string
	for _, binding := range []key.Binding{keys.Submit, keys.Complete, keys.NextLink, keys.Skip, keys.PageUp, keys.Logs, keys.Quit} {
		help := binding.Help()
		parts = append(parts, a.formatHint(help.Key, help.Desc))
	}
	if stats := FormatLogStats(a.options.Logs, a.styles); len(stats) > 0 {
		parts = append(parts, a.styles.MenuSeparator.Render(" │ "), stats)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func (a *App) formatHint(key, desc string) string {
	k := a.styles.MenuKey.Render("<" + key + ">")
	d := a.styles.MenuDesc.Render(desc)
	return k + d + " "
}

// Run starts the interactive terminal. Log lines are kept in the log buffer
// while it runs; warnings and errors also show up as toasts.
func Run(options Options) error {
	app := NewApp(options)
	program := tea.NewProgram(app, tea.WithAltScreen())

	logs := app.options.Logs
	logs.SetOnChange(func() {
		go program.Send(logsChangedMsg{})
	})
	defer logs.SetOnChange(nil)
	common.SetLogInterceptor(func(message string) bool {
		logs.AddLine(message)
		latest := logs.Recent(1)
		if len(latest) == 1 && latest[0].Level >= logbuf.LogWarn {
			toast := ShowWarningToast(latest[0].Message)
			if latest[0].Level == logbuf.LogError {
				toast = ShowErrorToast(latest[0].Message)
			}
			go program.Send(toast())
		}
		return true
	})
	defer common.ClearLogInterceptor()

	_, err := program.Run()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
