package interactive

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WordInterval is how long each word of the tagline stays.
const WordInterval = 2 * time.Second

var lastBannerID int64

type wordTickMsg struct {
	id  int
	tag int
}

// Banner is the ASCII art header with a tagline whose last word cycles.
type Banner struct {
	Art   string
	Name  string
	Words []string

	id      int
	tag     int
	index   int
	running bool
}

func NewBanner(art, name string, words []string) Banner {
	return Banner{
		Art:   art,
		Name:  name,
		Words: words,
		id:    int(atomic.AddInt64(&lastBannerID, 1)),
	}
}

// Start begins cycling; it is a no-op with fewer than two words or when
// already running.
func (b Banner) Start() (Banner, tea.Cmd) {
	if b.running || len(b.Words) < 2 {
		return b, nil
	}
	b.running = true
	b.tag++
	return b, b.tick()
}

func (b Banner) Update(msg tea.Msg) (Banner, tea.Cmd) {
	tick, ok := msg.(wordTickMsg)
	if !ok || tick.id != b.id || tick.tag != b.tag || !b.running {
		return b, nil
	}
	b.index = (b.index + 1) % len(b.Words)
	return b, b.tick()
}

func (b Banner) Word() string {
	if len(b.Words) == 0 {
		return ""
	}
	return b.Words[b.index]
}

func (b Banner) View(styles *Styles, width int) string {
	art := b.Art
	if width > 0 && lipgloss.Width(art) > width {
		art = b.Name
	}
	tagline := styles.Tagline.Render(fmt.Sprintf("Hi, I'm %s", b.Name))
	if word := b.Word(); len(word) > 0 {
		tagline += styles.Tagline.Render(", a ") + styles.Word.Render(word)
	}
	return lipgloss.JoinVertical(lipgloss.Left, styles.Banner.Render(art), tagline)
}

func (b Banner) tick() tea.Cmd {
	id, tag := b.id, b.tag
	return tea.Tick(WordInterval, func(time.Time) tea.Msg {
		return wordTickMsg{id: id, tag: tag}
	})
}
