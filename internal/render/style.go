// Package render formats reports for the terminal.
package render

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#64b5f6")
	colorGood    = lipgloss.Color("#66bb6a")
	colorBad     = lipgloss.Color("#ef5350")
	colorWarn    = lipgloss.Color("#fff59d")
	colorMuted   = lipgloss.Color("#888888")
)

type styles struct {
	header lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	warn   lipgloss.Style
	muted  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	box    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			header: plain,
			good:   plain,
			bad:    plain,
			warn:   plain,
			muted:  plain,
			label:  plain.Width(24),
			value:  plain,
			box:    plain,
		}
	}
	return styles{
		header: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		good:   lipgloss.NewStyle().Foreground(colorGood),
		bad:    lipgloss.NewStyle().Foreground(colorBad),
		warn:   lipgloss.NewStyle().Foreground(colorWarn),
		muted:  lipgloss.NewStyle().Foreground(colorMuted),
		label:  lipgloss.NewStyle().Width(24),
		value:  lipgloss.NewStyle().Bold(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
	}
}
