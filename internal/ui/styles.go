package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // lived weeks
	colorAccent     = lipgloss.Color("#FFD700") // upcoming birthday
	colorSuccess    = lipgloss.Color("#00E676") // confirmations
	colorDanger     = lipgloss.Color("#FF5252") // errors
	colorMuted      = lipgloss.Color("#636363") // empty weeks
	colorMutedLight = lipgloss.Color("#8C8C8C") // labels
	colorWhite      = lipgloss.Color("#EEEEEE") // summary text
	colorBlue       = lipgloss.Color("#5B8DEF") // links
)

// styles are bound to one renderer so color detection follows the Printer's
// writer rather than stdout.
type styles struct {
	filled   lipgloss.Style
	upcoming lipgloss.Style
	empty    lipgloss.Style
	label    lipgloss.Style
	summary  lipgloss.Style
	muted    lipgloss.Style
	errLabel lipgloss.Style
	ok       lipgloss.Style
	link     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		filled:   r.NewStyle().Foreground(colorPrimary),
		upcoming: r.NewStyle().Foreground(colorAccent),
		empty:    r.NewStyle().Foreground(colorMuted),
		label:    r.NewStyle().Foreground(colorMutedLight),
		summary:  r.NewStyle().Foreground(colorWhite),
		muted:    r.NewStyle().Foreground(colorMutedLight),
		errLabel: r.NewStyle().Foreground(colorDanger),
		ok:       r.NewStyle().Foreground(colorSuccess),
		link:     r.NewStyle().Foreground(colorBlue).Underline(true),
	}
}
