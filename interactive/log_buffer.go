package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/master-bogdan/termfolio/logbuf"
)

func (s *Styles) level(level logbuf.LogLevel) lipgloss.Style {
	switch {
	case level >= logbuf.LogError:
		return s.Error
	case level == logbuf.LogWarn:
		return s.Warning
	case level == logbuf.LogInfo:
		return s.ListItem
	default:
		return s.Subtle
	}
}

// FormatLogEntry renders one log line as "15:04:05 ● [source] message".
func FormatLogEntry(entry logbuf.LogEntry, styles *Styles, showTime bool) string {
	parts := make([]string, 0, 4)
	if showTime {
		parts = append(parts, styles.Subtle.Render(entry.Time.Format("15:04:05")))
	}
	parts = append(parts, styles.level(entry.Level).Render(entry.Level.Icon()))
	if len(entry.Source) > 0 {
		parts = append(parts, styles.Subtle.Render("["+entry.Source+"]"))
	}
	parts = append(parts, styles.ListItem.Render(entry.Message))
	return strings.Join(parts, " ")
}

// RenderLogBuffer shows the last n entries, oldest first.
func RenderLogBuffer(logs *logbuf.LogBuffer, styles *Styles, n int, showTime bool) string {
	entries := logs.Recent(n)
	if len(entries) == 0 {
		return styles.Subtle.Render("No logs yet...")
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, FormatLogEntry(entry, styles, showTime))
	}
	return strings.Join(lines, "\n")
}

// FormatLogStats is the menu bar summary; empty while nothing was logged.
func FormatLogStats(logs *logbuf.LogBuffer, styles *Styles) string {
	stats := logs.Stats()
	total := stats.Total()
	if total == 0 {
		return ""
	}
	parts := []string{}
	if errors := stats[logbuf.LogError]; errors > 0 {
		parts = append(parts, styles.Error.Render(fmt.Sprintf("%d errors", errors)))
	}
	if warnings := stats[logbuf.LogWarn]; warnings > 0 {
		parts = append(parts, styles.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	parts = append(parts, styles.Subtle.Render(fmt.Sprintf("%d total", total)))
	return strings.Join(parts, " · ")
}
