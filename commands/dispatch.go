package commands

import (
	"strings"
	"time"

	"github.com/master-bogdan/termfolio/content"
)

const (
	ClearCommand = "clear"
	HelpCommand  = "help"
	HiddenFlag   = "--hidden"
)

// ClearDelay separates emptying the output from showing help again.
const ClearDelay = 100 * time.Millisecond

type Kind int

const (
	Blank Kind = iota
	Clear
	Executed
	Unknown
)

func (it Kind) String() string {
	switch it {
	case Blank:
		return "blank"
	case Clear:
		return "clear"
	case Executed:
		return "executed"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}

// Output is what the terminal currently shows: one command and its result.
type Output struct {
	Command   string       `json:"command"`
	Output    content.Node `json:"output"`
	Timestamp time.Time    `json:"timestamp"`
}

type Result struct {
	Kind   Kind
	Name   string
	Args   []string
	Output *Output
}

// Parse splits a line on whitespace. The name is lower-cased, arguments are
// kept verbatim and there is no quoting.
func Parse(line string) (string, []string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// Dispatch runs line against the registry. Blank lines and clear are
// reported back without output; clear is left to the caller.
func (it *Registry) Dispatch(line string, now time.Time) Result {
	name, args, ok := Parse(line)
	if !ok {
		return Result{Kind: Blank}
	}
	if name == ClearCommand {
		return Result{Kind: Clear, Name: name, Args: args}
	}
	echo := strings.TrimSpace(line)
	descriptor, found := it.Lookup(name)
	if !found {
		return Result{
			Kind:   Unknown,
			Name:   name,
			Args:   args,
			Output: &Output{Command: echo, Output: NotFound(name), Timestamp: now},
		}
	}
	return Result{
		Kind:   Executed,
		Name:   name,
		Args:   args,
		Output: &Output{Command: echo, Output: descriptor.Execute(args), Timestamp: now},
	}
}

// Help is the output shown after boot and after clear.
func (it *Registry) Help(now time.Time) *Output {
	result := it.Dispatch(HelpCommand, now)
	return result.Output
}

func NotFound(name string) content.Node {
	return content.Wrap(content.Box,
		content.Wrap(content.Line, content.Wrap(content.Error, content.Textf("Command not found: %s", name))),
		content.Wrap(content.Line, content.Wrap(content.Error, content.Text("Type 'help' for available commands."))),
	)
}
