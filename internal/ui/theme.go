package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds resolved lipgloss colors for terminal rendering.
type Theme struct {
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Positive      lipgloss.Color
	Negative      lipgloss.Color
	MarkdownStyle string
}

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Positive:      lipgloss.Color("10"),
		Negative:      lipgloss.Color("9"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Positive:      lipgloss.Color("2"),
		Negative:      lipgloss.Color("1"),
		MarkdownStyle: "light",
	},
}

// ResolveTheme returns the named preset, falling back to default-dark for
// unknown names.
func ResolveTheme(name string) Theme {
	if t, ok := presets[name]; ok {
		return t
	}
	return presets["default-dark"]
}

// DangerStyle returns the style used for destructive prompts.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger)
}

// MutedStyle returns the style used for secondary text.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// SentimentStyle returns the style for a sentiment value: positive scores
// render in the positive color, negative in the negative color, zero muted.
func (t Theme) SentimentStyle(score float64) lipgloss.Style {
	switch {
	case score > 0:
		return lipgloss.NewStyle().Foreground(t.Positive)
	case score < 0:
		return lipgloss.NewStyle().Foreground(t.Negative)
	default:
		return t.MutedStyle()
	}
}
