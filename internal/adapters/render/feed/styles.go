package feed

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	postTitle lipgloss.Style
	byline    lipgloss.Style
	body      lipgloss.Style
	stats     lipgloss.Style
	active    lipgloss.Style
	tag       lipgloss.Style
	section   lipgloss.Style
	comment   lipgloss.Style
	empty     lipgloss.Style
	draft     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		postTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		byline:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		body:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		stats:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		active:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		section:   lipgloss.NewStyle().MarginTop(1),
		comment:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2),
		empty:     lipgloss.NewStyle().Faint(true),
		draft:     lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
