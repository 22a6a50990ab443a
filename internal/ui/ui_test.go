package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/lifeweeks/internal/grid"
	"github.com/papapumpkin/lifeweeks/internal/lifechart"
)

func TestChart_EmptyGrid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, false).Chart(grid.Empty(3))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for i, line := range lines {
		if n := strings.Count(line, glyphEmpty); n != 53 {
			t.Errorf("line %d has %d empty cells, want 53", i, n)
		}
		if strings.Contains(line, glyphFilled) || strings.Contains(line, glyphUpcoming) {
			t.Errorf("line %d should have no marks: %q", i, line)
		}
	}
}

func TestChart_MarkedGrid(t *testing.T) {
	t.Parallel()

	birth := time.Date(1985, time.June, 15, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	c, err := lifechart.Compute(birth, 100, ref)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	New(&buf, false).Chart(grid.FromChart(c))
	out := buf.String()

	if got := strings.Count(out, glyphFilled); got != c.Summary.TotalWeeksLived {
		t.Errorf("filled glyphs = %d, want %d", got, c.Summary.TotalWeeksLived)
	}
	if got := strings.Count(out, glyphUpcoming); got != c.Summary.WeeksUntilNextBirthday {
		t.Errorf("upcoming glyphs = %d, want %d", got, c.Summary.WeeksUntilNextBirthday)
	}

	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "  1 ") {
		t.Errorf("first row label = %q, want right-aligned 1", lines[0][:4])
	}
	if !strings.HasPrefix(lines[40], " 41 "+glyphFilled+glyphUpcoming) {
		t.Errorf("row 41 = %q, want one lived week then upcoming", lines[40])
	}
}

func TestChart_NoColorIsPlain(t *testing.T) {
	t.Parallel()

	g := grid.New(1, func(int) int { return 4 })
	g.MarkCell(0, 0, grid.Filled)
	g.MarkCell(0, 1, grid.Upcoming)
	g.SetRowLabel(0, "1")

	var buf bytes.Buffer
	New(&buf, false).Chart(g)

	if want := "  1 " + glyphFilled + glyphUpcoming + glyphEmpty + glyphEmpty + "\n"; buf.String() != want {
		t.Errorf("Chart = %q, want %q", buf.String(), want)
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("plain output contains escape codes: %q", buf.String())
	}
}

func TestMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fn     func(p *Printer)
		substr []string
	}{
		{"summary", func(p *Printer) { p.Summary("From A to B") }, []string{"From A to B"}},
		{"error", func(p *Printer) { p.Error("invalid birthdate") }, []string{"error:", "invalid birthdate"}},
		{"info", func(p *Printer) { p.Info("no birthdate yet") }, []string{"no birthdate yet"}},
		{"legend", func(p *Printer) { p.Legend() }, []string{"lived", "until next birthday", "ahead"}},
		{"link copied", func(p *Printer) { p.Link("http://x/?birthdate=1", true) }, []string{"http://x/?birthdate=1", "copied"}},
		{"profile saved", func(p *Printer) { p.ProfileSaved("/tmp/p.toml") }, []string{"profile saved", "/tmp/p.toml"}},
		{
			"profile show",
			func(p *Printer) { p.ProfileShow("/tmp/p.toml", "1985-06-15", 0, "") },
			[]string{"1985-06-15", "end year:   (default)", "locale:     (default)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.fn(New(&buf, false))
			for _, s := range tt.substr {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("output missing %q:\n%s", s, buf.String())
				}
			}
		})
	}
}

func TestLink_NotCopied(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, false).Link("http://x/", false)
	if strings.Contains(buf.String(), "copied") {
		t.Errorf("unexpected copy note:\n%s", buf.String())
	}
}
