package interactive

import (
	"sync"
)

const (
	maxHistoryEntries = 50
)

// History keeps the lines entered at the prompt during this session,
// newest first. It is never written to disk.
type History struct {
	entries []string
	cursor  int
	mu      sync.RWMutex
}

func NewHistory() *History {
	return &History{
		entries: make([]string, 0, maxHistoryEntries),
		cursor:  -1,
	}
}

// Add remembers a line and resets browsing; repeats of the newest line are
// kept once.
func (h *History) Add(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cursor = -1
	if len(line) == 0 {
		return
	}
	if len(h.entries) > 0 && h.entries[0] == line {
		return
	}
	h.entries = append([]string{line}, h.entries...)
	if len(h.entries) > maxHistoryEntries {
		h.entries = h.entries[:maxHistoryEntries]
	}
}

// Older steps back in time; ok is false when there is nothing older.
func (h *History) Older() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor+1 >= len(h.entries) {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Newer steps forward; past the newest entry it yields an empty line.
func (h *History) Newer() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor < 0 {
		return "", false
	}
	h.cursor--
	if h.cursor < 0 {
		return "", true
	}
	return h.entries[h.cursor], true
}
