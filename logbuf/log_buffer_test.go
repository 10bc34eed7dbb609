package logbuf_test

import (
	"fmt"
	"testing"

	"github.com/master-bogdan/termfolio/hamlet"
	"github.com/master-bogdan/termfolio/logbuf"
)

func TestAddLineDetectsLoggerPrefixes(t *testing.T) {
	cases := []struct {
		line    string
		level   logbuf.LogLevel
		source  string
		message string
	}{
		{"[D] Settings loaded.", logbuf.LogDebug, "", "Settings loaded."},
		{"[T] wait logs done", logbuf.LogTrace, "", "wait logs done"},
		{"Plain message", logbuf.LogInfo, "", "Plain message"},
		{"Error [stats]: disk full", logbuf.LogError, "stats", "Error [stats]: disk full"},
		{"Warning [posts; not critical]: skipped", logbuf.LogWarn, "posts", "Warning [posts; not critical]: skipped"},
		{"Fatal [serve]: bind", logbuf.LogError, "serve", "Fatal [serve]: bind"},
	}
	for _, example := range cases {
		t.Run(example.line, func(t *testing.T) {
			must_be, _ := hamlet.Specifications(t)

			buffer := logbuf.NewLogBuffer(10)
			buffer.AddLine(example.line)
			entries := buffer.Recent(buffer.Len())
			must_be.Equal(1, len(entries))
			must_be.Equal(example.level, entries[0].Level)
			must_be.Equal(example.source, entries[0].Source)
			must_be.Equal(example.message, entries[0].Message)
		})
	}
}

func TestBufferKeepsMostRecentEntries(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	buffer := logbuf.NewLogBuffer(10)
	changes := 0
	buffer.SetOnChange(func() { changes++ })
	buffer.AddLine("   ")
	for at := 0; at < 15; at++ {
		buffer.Add(logbuf.LogInfo, "", fmt.Sprintf("line %d", at))
	}
	must_be.Equal(15, changes)
	must_be.Equal(10, buffer.Len())
	must_be.Equal("line 5", buffer.Recent(10)[0].Message)

	recent := buffer.Recent(2)
	must_be.Equal("line 13", recent[0].Message)
	must_be.Equal("line 14", recent[1].Message)
	must_be.Equal(10, buffer.Stats()[logbuf.LogInfo])
	must_be.Equal(10, buffer.Stats().Total())

	buffer.Clear()
	must_be.Equal(0, buffer.Len())
	must_be.Nil(buffer.Recent(3))
}
