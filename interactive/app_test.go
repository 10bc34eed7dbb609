package interactive

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/master-bogdan/termfolio/boot"
	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/hamlet"
	"github.com/master-bogdan/termfolio/site"
	"github.com/master-bogdan/termfolio/typewriter"
)

var moment = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func testApp(t *testing.T, skipBoot bool) *App {
	t.Helper()
	clock := func() time.Time { return moment }
	registry, err := commands.Build(commands.Environment{Clock: clock, Intn: func(int) int { return 0 }})
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	app := NewApp(Options{
		Registry: registry,
		Profile:  *site.Default(),
		SkipBoot: skipBoot,
		Clock:    clock,
	})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 200})
	app.Init()
	return app
}

func press(app *App, kind tea.KeyType) tea.Cmd {
	_, cmd := app.Update(tea.KeyMsg{Type: kind})
	return cmd
}

// revealAll feeds the typewriter its ticks until the output is complete.
func revealAll(t *testing.T, app *App) {
	t.Helper()
	for guard := 0; !app.writer.Complete(); guard++ {
		if guard > 100000 {
			t.Fatalf("reveal never completed")
		}
		app.Update(typewriter.TickMsg{ID: app.writer.ID(), Tag: app.writer.Generation()})
	}
}

func shown(app *App) string {
	visible := app.writer.Visible()
	if visible == nil {
		return ""
	}
	return content.PlainText(visible)
}

func TestHelpIsShownAfterReady(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	app := testApp(t, true)
	must_be.Equal(PhaseReady, app.Phase())
	must_be.Equal("", shown(app))

	app.Update(helpMsg{generation: 0})
	must_be.Equal("help", app.echo)
	revealAll(t, app)
	must_be.True(strings.Contains(shown(app), "whoami"))
}

func TestTypedCommandIsEchoedAndRevealed(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	app := testApp(t, true)
	app.prompt.SetValue("  whoami ")
	wont_be.Nil(press(app, tea.KeyEnter))
	must_be.Equal("whoami", app.echo)
	must_be.Equal("", app.prompt.Value())
	must_be.Equal(0, app.writer.Revealed())

	app.Update(typewriter.TickMsg{ID: app.writer.ID(), Tag: app.writer.Generation()})
	must_be.Equal(1, app.writer.Revealed())

	revealAll(t, app)
	must_be.True(strings.Contains(shown(app), site.Default().Name))
	must_be.True(strings.Contains(app.output.View(), "$ whoami"))
}

func TestClearSchedulesHelpAndDropsStaleOnes(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	app := testApp(t, true)
	stale := helpMsg{generation: app.generation}

	app.prompt.SetValue("clear")
	wont_be.Nil(press(app, tea.KeyEnter))
	must_be.Equal("", app.echo)
	must_be.Equal("", shown(app))

	app.Update(stale)
	must_be.Equal("", app.echo)

	app.Update(helpMsg{generation: app.generation})
	must_be.Equal("help", app.echo)
}

func TestBlankLineDoesNothing(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	app := testApp(t, true)
	app.prompt.SetValue("   ")
	must_be.Nil(press(app, tea.KeyEnter))
	must_be.Equal(0, app.generation)
	must_be.Equal("", app.echo)
}

func TestUnknownCommandShowsNotFound(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	app := testApp(t, true)
	app.prompt.SetValue("Nope")
	press(app, tea.KeyEnter)
	revealAll(t, app)
	must_be.Equal("Nope", app.echo)
	must_be.True(strings.Contains(shown(app), "Command not found: nope"))
}

func TestQuickCommandRunsFromFocus(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	app := testApp(t, true)
	press(app, tea.KeyCtrlN)
	must_be.Equal(0, app.links.QuickFocus())
	press(app, tea.KeyCtrlN)
	must_be.Equal(1, app.links.QuickFocus())
	press(app, tea.KeyCtrlP)
	must_be.Equal(0, app.links.QuickFocus())

	press(app, tea.KeyEnter)
	must_be.Equal("whoami", app.echo)
}

func TestTabCompletesCommandNames(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	app := testApp(t, true)
	app.prompt.SetValue("pro")
	cmd := press(app, tea.KeyTab)
	must_be.Equal("projects", app.prompt.Value())
	must_be.Equal(ToastMsg{Type: ToastSuccess, Message: "completed projects", Duration: toastDuration}, cmd())

	app.Update(cmd())
	must_be.Contains(app.View(), "completed projects")
	must_be.Nil(press(app, tea.KeyTab))

	app.prompt.SetValue("zzz")
	must_be.Nil(press(app, tea.KeyTab))
	must_be.Equal("zzz", app.prompt.Value())
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		expected string
	}{
		{"empty", nil, ""},
		{"single", []string{"help"}, "help"},
		{"shared", []string{"contacts", "coffee", "cowsay"}, "co"},
		{"nothing shared", []string{"help", "blog"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)
			must_be.Equal(tt.expected, commonPrefix(tt.words))
		})
	}
}

func TestEscapeSkipsTheReveal(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	app := testApp(t, true)
	app.prompt.SetValue("projects")
	press(app, tea.KeyEnter)
	must_be.True(!app.writer.Complete())

	wont_be.Nil(press(app, tea.KeyEsc))
	must_be.True(app.writer.Complete())
	must_be.True(strings.Contains(shown(app), "Featured Projects:"))

	must_be.Nil(press(app, tea.KeyEsc))
}

func TestHistoryRecallsEarlierLines(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	app := testApp(t, true)
	for _, line := range []string{"whoami", "projects"} {
		app.prompt.SetValue(line)
		press(app, tea.KeyEnter)
	}

	press(app, tea.KeyUp)
	must_be.Equal("projects", app.prompt.Value())
	press(app, tea.KeyUp)
	must_be.Equal("whoami", app.prompt.Value())
	press(app, tea.KeyUp)
	must_be.Equal("whoami", app.prompt.Value())
	press(app, tea.KeyDown)
	must_be.Equal("projects", app.prompt.Value())
	press(app, tea.KeyDown)
	must_be.Equal("", app.prompt.Value())
}

func TestBootPhaseBecomesReady(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	app := testApp(t, false)
	must_be.Equal(PhaseBoot, app.Phase())
	must_be.Equal(boot.Typing, app.boot.State())

	app.prompt.SetValue("whoami")
	must_be.Nil(press(app, tea.KeyEnter))
	must_be.Equal(0, app.generation)

	cmd := press(app, tea.KeyEsc)
	wont_be.Nil(cmd)
	complete := cmd()
	must_be.Equal(boot.CompleteMsg{ID: app.boot.ID()}, complete)

	app.Update(boot.CompleteMsg{ID: app.boot.ID() + 1000})
	must_be.Equal(PhaseBoot, app.Phase())

	_, cmd = app.Update(complete)
	wont_be.Nil(cmd)
	must_be.Equal(PhaseReady, app.Phase())
	must_be.True(strings.Contains(app.View(), site.Default().Prompt.String()))
}

func TestLogsToggle(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	app := testApp(t, true)
	app.options.Logs.AddLine("Warning [serve]; slow request")
	press(app, tea.KeyCtrlL)
	must_be.True(app.showLogs)
	must_be.True(strings.Contains(app.View(), "slow request"))
	press(app, tea.KeyCtrlL)
	must_be.True(!app.showLogs)
}

func TestToastExpiresOnlyByItsOwnTimeout(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	app := testApp(t, true)
	app.Update(ToastMsg{Type: ToastInfo, Message: "hello", Duration: time.Second})
	wont_be.Nil(app.toast)
	must_be.True(strings.Contains(app.View(), "hello"))

	app.Update(ToastTimeoutMsg{ID: app.toast.ID + 1})
	wont_be.Nil(app.toast)
	app.Update(ToastTimeoutMsg{ID: app.toast.ID})
	must_be.Nil(app.toast)
}
