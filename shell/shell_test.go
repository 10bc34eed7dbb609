package shell_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/hamlet"
	"github.com/master-bogdan/termfolio/shell"
)

var moment = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func testShell(t *testing.T) (*shell.Shell, *[]time.Duration) {
	t.Helper()
	clock := func() time.Time { return moment }
	registry, err := commands.Build(commands.Environment{Clock: clock, Intn: func(int) int { return 0 }})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	slept := []time.Duration{}
	return &shell.Shell{
		Registry: registry,
		Prompt:   "guest@termfolio:~$",
		Speed:    time.Millisecond,
		Styler:   content.Plain,
		Clock:    clock,
		Sleep:    func(pause time.Duration) { slept = append(slept, pause) },
	}, &slept
}

func TestSessionUntilEndOfInput(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	it, slept := testShell(t)
	out := &bytes.Buffer{}
	must_be.Nil(it.Run(context.Background(), strings.NewReader("whoami\n\n  NOPE\n"), out))

	text := out.String()
	must_be.Contains(text, "Show available commands")
	must_be.Contains(text, "Command not found: nope")
	must_be.Equal(4, strings.Count(text, "guest@termfolio:~$ "))
	must_be.Length(0, *slept)
}

func TestFarewellStopsTheSession(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	it, _ := testShell(t)
	out := &bytes.Buffer{}
	must_be.Nil(it.Run(context.Background(), strings.NewReader("Exit\nwhoami\n"), out))
	wont_be.Contains(out.String(), "Specializations")
}

func TestCancelledContextStopsTheSession(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	it, _ := testShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := &bytes.Buffer{}
	must_be.Nil(it.Run(ctx, strings.NewReader("whoami\n"), out))
	must_be.Equal(0, strings.Count(out.String(), "guest@termfolio:~$"))
}

func TestClearWaitsThenShowsHelp(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	it, slept := testShell(t)
	out := &bytes.Buffer{}
	must_be.True(it.Execute(context.Background(), out, "clear"))
	must_be.Equal([]time.Duration{commands.ClearDelay}, *slept)
	must_be.Contains(out.String(), "Available Commands:")
	must_be.True(!it.Execute(context.Background(), out, "   "))
}

func TestAnimationTicksOncePerCharacter(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	it, slept := testShell(t)
	it.Animate = true
	out := &bytes.Buffer{}
	it.Execute(context.Background(), out, "cowsay moo")

	result := it.Registry.Dispatch("cowsay moo", moment)
	must_be.Length(content.Count(result.Output.Output), *slept)
	must_be.True(strings.HasSuffix(out.String(), content.RenderPlain(result.Output.Output)+"\n"))
}

func TestCancelEndsSessionWaitingAtThePrompt(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	it, _ := testShell(t)
	reader, writer := io.Pipe()
	defer writer.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &bytes.Buffer{}
	finished := make(chan error, 1)
	go func() {
		finished <- it.Run(ctx, reader, out)
	}()

	_, err := io.WriteString(writer, "whoami\n")
	must_be.Nil(err)
	cancel()

	select {
	case err := <-finished:
		must_be.Nil(err)
	case <-time.After(2 * time.Second):
		t.Fatal("session kept waiting for input after cancel")
	}
}

func TestCancelStopsTheTyping(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	it, slept := testShell(t)
	it.Animate = true
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	it.Sleep = func(pause time.Duration) {
		*slept = append(*slept, pause)
		cancel()
	}

	must_be.True(it.Execute(ctx, &bytes.Buffer{}, "cowsay moo"))
	must_be.Length(1, *slept)
}
