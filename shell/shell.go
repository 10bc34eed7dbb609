// Package shell is the line mode of the terminal: read a line, dispatch it,
// type the answer out, repeat.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/master-bogdan/termfolio/commands"
	"github.com/master-bogdan/termfolio/common"
	"github.com/master-bogdan/termfolio/content"
	"github.com/master-bogdan/termfolio/pretty"
	"github.com/master-bogdan/termfolio/typewriter"
)

const clearScreen = "\033[H\033[2J"

var farewells = map[string]bool{
	"exit":   true,
	"quit":   true,
	"logout": true,
}

type Shell struct {
	Registry *commands.Registry
	Prompt   string
	Speed    time.Duration
	// Animate reveals output one character per tick, redrawing in place.
	// Without it every answer is printed whole as plain text.
	Animate bool
	Styler  content.Styler
	Clock   func() time.Time
	Sleep   func(time.Duration)
	// Width reports the terminal columns, used to count wrapped rows when
	// redrawing. Nil means lines never wrap.
	Width   func() int
}

// New picks animation and colors from the terminal as detected by
// pretty.Setup.
func New(registry *commands.Registry, prompt string, speed time.Duration) *Shell {
	styler := content.Plain
	if pretty.Interactive {
		styler = pretty.NewStyler()
	}
	if speed <= 0 {
		speed = typewriter.DefaultSpeed
	}
	return &Shell{
		Registry: registry,
		Prompt:   prompt,
		Speed:    speed,
		Animate:  pretty.Interactive,
		Styler:   styler,
		Clock:    time.Now,
		Sleep:    time.Sleep,
		Width:    pretty.TerminalWidth,
	}
}

// Run greets with help and serves lines until end of input, a farewell
// word or a cancelled context. Input is read on its own goroutine, so a
// cancel also ends a session waiting at the prompt.
func (it *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	done := make(chan struct{})
	defer close(done)
	lines, failed := readLines(in, done)

	it.reveal(ctx, out, it.Registry.Help(it.Clock()).Output)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintf(out, "%s ", it.Prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return <-failed
			}
			if name, _, ok := commands.Parse(line); ok && farewells[name] {
				return nil
			}
			it.Execute(ctx, out, line)
		}
	}
}

// readLines feeds lines until end of input or until done is closed.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	failed := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		failed <- scanner.Err()
	}()
	return lines, failed
}

// Execute handles one line; it reports false for blank lines.
func (it *Shell) Execute(ctx context.Context, out io.Writer, line string) bool {
	result := it.Registry.Dispatch(line, it.Clock())
	common.Trace("Shell ran %q as %v.", line, result.Kind)
	switch result.Kind {
	case commands.Blank:
		return false
	case commands.Clear:
		if it.Animate {
			fmt.Fprint(out, clearScreen)
		}
		it.Sleep(commands.ClearDelay)
		it.reveal(ctx, out, it.Registry.Help(it.Clock()).Output)
	default:
		it.reveal(ctx, out, result.Output.Output)
	}
	return true
}

func (it *Shell) render(node content.Node) string {
	if node == nil {
		return ""
	}
	return content.Render(node, content.Options{Styler: it.Styler, Focused: -1, Hrefs: true})
}

// reveal types the node out; a cancelled context leaves the partial frame.
func (it *Shell) reveal(ctx context.Context, out io.Writer, node content.Node) {
	if !it.Animate {
		fmt.Fprintln(out, it.render(node))
		return
	}
	fmt.Fprint(out, pretty.HideCursor())
	defer fmt.Fprint(out, pretty.ShowCursor())

	width := 0
	if it.Width != nil {
		width = it.Width()
	}
	writer, _ := typewriter.New(it.Speed).SetContent(node)
	drawn := 0
	for !writer.Complete() && ctx.Err() == nil {
		writer, _ = writer.Update(typewriter.TickMsg{ID: writer.ID(), Tag: writer.Generation()})
		frame := it.render(writer.Visible())
		fmt.Fprint(out, pretty.Redraw(drawn), frame)
		drawn = screenRows(frame, width)
		it.Sleep(it.Speed)
	}
	fmt.Fprintln(out)
}

// screenRows is how many terminal rows the frame occupies once long lines
// wrap at width columns. A width of zero or less means no wrapping.
func screenRows(frame string, width int) int {
	rows := 0
	for _, line := range strings.Split(frame, "\n") {
		columns := lipgloss.Width(line)
		if width <= 0 || columns <= width {
			rows++
			continue
		}
		rows += (columns + width - 1) / width
	}
	return rows
}
