package interactive

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color palette of the terminal.
type Theme struct {
	Name string

	Background lipgloss.AdaptiveColor
	Text       lipgloss.AdaptiveColor
	TextMuted  lipgloss.AdaptiveColor
	Prompt     lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Banner     lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Secret     lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
	Highlight  lipgloss.AdaptiveColor
}

// ClassicTheme is green and cyan on near-black.
func ClassicTheme() Theme {
	return Theme{
		Name:       "classic",
		Background: lipgloss.AdaptiveColor{Dark: "#0a0a0a", Light: "#f5f5f5"},
		Text:       lipgloss.AdaptiveColor{Dark: "#e0e0e0", Light: "#1a1a1a"},
		TextMuted:  lipgloss.AdaptiveColor{Dark: "#888888", Light: "#6b6b6b"},
		Prompt:     lipgloss.AdaptiveColor{Dark: "#00ff00", Light: "#00875f"},
		Accent:     lipgloss.AdaptiveColor{Dark: "#00ffff", Light: "#007197"},
		Banner:     lipgloss.AdaptiveColor{Dark: "#00aaff", Light: "#0058a3"},
		Success:    lipgloss.AdaptiveColor{Dark: "#00ff00", Light: "#00875f"},
		Error:      lipgloss.AdaptiveColor{Dark: "#ff0000", Light: "#c00000"},
		Secret:     lipgloss.AdaptiveColor{Dark: "#ff00ff", Light: "#a000a0"},
		Border:     lipgloss.AdaptiveColor{Dark: "#333333", Light: "#c4c8da"},
		Highlight:  lipgloss.AdaptiveColor{Dark: "#1a1a1a", Light: "#e1e2e7"},
	}
}

// RetroTheme is a mint CRT.
func RetroTheme() Theme {
	return Theme{
		Name:       "retro",
		Background: lipgloss.AdaptiveColor{Dark: "#0b1410", Light: "#eefaf3"},
		Text:       lipgloss.AdaptiveColor{Dark: "#b8f5d0", Light: "#1d4b34"},
		TextMuted:  lipgloss.AdaptiveColor{Dark: "#4f8a6b", Light: "#5c8a72"},
		Prompt:     lipgloss.AdaptiveColor{Dark: "#33ff99", Light: "#138a50"},
		Accent:     lipgloss.AdaptiveColor{Dark: "#7dffc4", Light: "#0f7a4a"},
		Banner:     lipgloss.AdaptiveColor{Dark: "#33ff99", Light: "#138a50"},
		Success:    lipgloss.AdaptiveColor{Dark: "#33ff99", Light: "#138a50"},
		Error:      lipgloss.AdaptiveColor{Dark: "#ff6b6b", Light: "#b03030"},
		Secret:     lipgloss.AdaptiveColor{Dark: "#ffd166", Light: "#8c6c3e"},
		Border:     lipgloss.AdaptiveColor{Dark: "#1f3d2e", Light: "#b5dcc6"},
		Highlight:  lipgloss.AdaptiveColor{Dark: "#173325", Light: "#d2f0df"},
	}
}

var themes = map[string]func() Theme{
	"classic": ClassicTheme,
	"retro":   RetroTheme,
}

// ThemeNames lists the known themes alphabetically.
func ThemeNames() []string {
	result := make([]string, 0, len(themes))
	for name := range themes {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// ThemeNamed picks a theme; an empty name falls back to the variant's own.
func ThemeNamed(name, variant string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		name = variant
	}
	constructor, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q, known themes are: %s", name, strings.Join(ThemeNames(), ", "))
	}
	return constructor(), nil
}
