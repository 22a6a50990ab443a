// Package ui renders life calendars and status messages to a terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/papapumpkin/lifeweeks/internal/grid"
)

// Cell glyphs.
const (
	glyphFilled   = "■"
	glyphUpcoming = "◆"
	glyphEmpty    = "·"
)

// labelWidth fits a three-digit year label.
const labelWidth = 3

// Printer writes styled output to w. Colors follow the terminal's profile
// unless disabled.
type Printer struct {
	w      io.Writer
	styles styles
}

// New returns a Printer for w. When color is false all output is plain text.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, styles: newStyles(r)}
}

// Chart renders g one row per line: the row label, then one glyph per week.
// Consecutive cells with the same marker are styled as a single run.
func (p *Printer) Chart(g *grid.Grid) {
	var b strings.Builder
	for _, row := range g.Rows {
		b.WriteString(p.styles.label.Render(fmt.Sprintf("%*s", labelWidth, row.Label)))
		b.WriteByte(' ')
		for start := 0; start < len(row.Cells); {
			end := start + 1
			for end < len(row.Cells) && row.Cells[end] == row.Cells[start] {
				end++
			}
			b.WriteString(p.run(row.Cells[start], end-start))
			start = end
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(p.w, b.String())
}

func (p *Printer) run(m grid.Marker, n int) string {
	switch m {
	case grid.Filled:
		return p.styles.filled.Render(strings.Repeat(glyphFilled, n))
	case grid.Upcoming:
		return p.styles.upcoming.Render(strings.Repeat(glyphUpcoming, n))
	default:
		return p.styles.empty.Render(strings.Repeat(glyphEmpty, n))
	}
}

// Legend explains the cell glyphs.
func (p *Printer) Legend() {
	fmt.Fprintf(p.w, "%s %s  %s %s  %s %s\n",
		p.styles.filled.Render(glyphFilled), p.styles.muted.Render("lived"),
		p.styles.upcoming.Render(glyphUpcoming), p.styles.muted.Render("until next birthday"),
		p.styles.empty.Render(glyphEmpty), p.styles.muted.Render("ahead"),
	)
}

// Summary prints the chart's one-line description.
func (p *Printer) Summary(text string) {
	fmt.Fprintln(p.w, p.styles.summary.Render(text))
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.styles.errLabel.Render("error:")+" "+msg)
}

// Info prints a de-emphasized message.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.styles.muted.Render(msg))
}

// Link prints a share link, noting whether it reached the clipboard.
func (p *Printer) Link(url string, copied bool) {
	fmt.Fprintln(p.w, p.styles.link.Render(url))
	if copied {
		fmt.Fprintln(p.w, p.styles.ok.Render("✓ link copied to clipboard"))
	}
}

// ProfileSaved confirms a profile write.
func (p *Printer) ProfileSaved(path string) {
	fmt.Fprintln(p.w, p.styles.ok.Render("✓ profile saved")+" "+p.styles.muted.Render(path))
}

// ProfileShow prints the stored profile fields. Unset fields show their
// fallback in parentheses.
func (p *Printer) ProfileShow(path, birthdate string, endYear int, locale string) {
	fmt.Fprintln(p.w, p.styles.muted.Render("profile: "+path))
	fmt.Fprintf(p.w, "  birthdate:  %s\n", orDefault(birthdate, "(not set)"))
	if endYear > 0 {
		fmt.Fprintf(p.w, "  end year:   %d\n", endYear)
	} else {
		fmt.Fprintf(p.w, "  end year:   (default)\n")
	}
	fmt.Fprintf(p.w, "  locale:     %s\n", orDefault(locale, "(default)"))
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
