package logbuf

import (
	"strings"
	"sync"
	"time"
)

// Iconic controls whether to use Unicode icons or ASCII fallbacks
var Iconic = true

// LogLevel represents the severity of a log entry
type LogLevel int

const (
	LogTrace LogLevel = iota
	LogDebug
	LogInfo
	LogWarn
	LogError
)

var levelNames = [...]struct {
	name, icon string
}{
	LogTrace: {"TRACE", "·"},
	LogDebug: {"DEBUG", "○"},
	LogInfo:  {"INFO", "●"},
	LogWarn:  {"WARN", "▲"},
	LogError: {"ERROR", "✗"},
}

func (l LogLevel) known() bool {
	return l >= LogTrace && l <= LogError
}

func (l LogLevel) String() string {
	if !l.known() {
		return "???"
	}
	return levelNames[l].name
}

// Icon is a one character marker of the level, ASCII unless Iconic.
func (l LogLevel) Icon() string {
	switch {
	case !l.known():
		return "?"
	case !Iconic:
		return levelNames[l].name[:1]
	default:
		return levelNames[l].icon
	}
}

// LogEntry represents a single log line with metadata
type LogEntry struct {
	Time    time.Time
	Level   LogLevel
	Source  string // context of an error or warning, e.g. "serve"
	Message string
}

// LogBuffer is a thread-safe circular buffer for log entries
type LogBuffer struct {
	entries  []LogEntry
	maxSize  int
	mu       sync.RWMutex
	onChange func() // Callback when new entry is added
}

// NewLogBuffer creates a new log buffer with specified max size
func NewLogBuffer(maxSize int) *LogBuffer {
	if maxSize < 10 {
		maxSize = 10
	}
	return &LogBuffer{
		entries: make([]LogEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

// SetOnChange sets a callback to be called when entries change
func (lb *LogBuffer) SetOnChange(fn func()) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.onChange = fn
}

// Add appends a new log entry
func (lb *LogBuffer) Add(level LogLevel, source, message string) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	entry := LogEntry{
		Time:    time.Now(),
		Level:   level,
		Source:  source,
		Message: strings.TrimSpace(message),
	}

	lb.entries = append(lb.entries, entry)

	// Trim if over capacity (circular buffer behavior)
	if len(lb.entries) > lb.maxSize {
		lb.entries = lb.entries[len(lb.entries)-lb.maxSize:]
	}

	// Notify listener
	if lb.onChange != nil {
		lb.onChange()
	}
}

var levelPrefixes = []struct {
	prefix string
	level  LogLevel
}{
	{"[T] ", LogTrace},
	{"[D] ", LogDebug},
	{"[N] ", LogInfo},
	{"Fatal [", LogError},
	{"Error [", LogError},
	{"Warning [", LogWarn},
}

// AddLine adds a line as formatted by the common logger; the level comes
// from its prefix and the source from a bracketed context.
func (lb *LogBuffer) AddLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	level := LogInfo
	for _, candidate := range levelPrefixes {
		if strings.HasPrefix(line, candidate.prefix) {
			level = candidate.level
			if strings.HasSuffix(candidate.prefix, "] ") {
				line = strings.TrimPrefix(line, candidate.prefix)
			}
			break
		}
	}

	source := ""
	if open := strings.Index(line, "["); open >= 0 && level >= LogWarn {
		if end := strings.Index(line[open:], "]"); end > 0 {
			source = strings.SplitN(line[open+1:open+end], ";", 2)[0]
		}
	}

	lb.Add(level, source, line)
}

// Recent returns the N most recent entries
func (lb *LogBuffer) Recent(n int) []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	if n <= 0 || len(lb.entries) == 0 {
		return nil
	}
	if n > len(lb.entries) {
		n = len(lb.entries)
	}

	// Return a copy to avoid race conditions
	result := make([]LogEntry, n)
	copy(result, lb.entries[len(lb.entries)-n:])
	return result
}

// Len returns the number of entries
func (lb *LogBuffer) Len() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	return len(lb.entries)
}

func (lb *LogBuffer) Clear() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.entries = lb.entries[:0]
}

// LogStats counts entries per level, indexed by LogLevel.
type LogStats [LogError + 1]int

func (it LogStats) Total() int {
	total := 0
	for _, count := range it {
		total += count
	}
	return total
}

func (lb *LogBuffer) Stats() LogStats {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	var stats LogStats
	for _, entry := range lb.entries {
		stats[entry.Level]++
	}
	return stats
}
