// Package grid holds the display model of a life calendar: rows of week
// cells, each optionally marked as lived or upcoming, plus row labels.
// Renderers read a Grid; they never compute dates.
package grid

import (
	"strconv"

	"github.com/papapumpkin/lifeweeks/internal/lifechart"
)

// Marker is the state of a single cell.
type Marker int

const (
	Unmarked Marker = iota // Week not yet reached
	Filled                 // Week already lived
	Upcoming               // Week before the next birthday
)

// String returns the CSS-friendly name of the marker.
func (m Marker) String() string {
	switch m {
	case Filled:
		return "filled"
	case Upcoming:
		return "upcoming"
	default:
		return "empty"
	}
}

// Row is one year of life.
type Row struct {
	Label string
	Cells []Marker
}

// Grid is a fixed set of rows created up front and marked in place.
type Grid struct {
	Rows []Row
}

// New creates a grid with rows rows; weeksPerRow reports the cell count of
// each row.
func New(rows int, weeksPerRow func(row int) int) *Grid {
	g := &Grid{Rows: make([]Row, rows)}
	for i := range g.Rows {
		g.Rows[i].Cells = make([]Marker, weeksPerRow(i))
	}
	return g
}

// Empty returns a grid of horizon rows with room for 53 weeks each and no
// marks, as shown before a valid birthdate is known.
func Empty(horizon int) *Grid {
	return New(horizon, func(int) int { return lifechart.MaxRowWeeks })
}

// MarkCell sets the marker of a cell. Cells outside the grid are ignored,
// and a Filled cell is never downgraded to Upcoming. It reports whether the
// cell changed.
func (g *Grid) MarkCell(row, week int, m Marker) bool {
	if row < 0 || row >= len(g.Rows) {
		return false
	}
	cells := g.Rows[row].Cells
	if week < 0 || week >= len(cells) {
		return false
	}
	if cells[week] == Filled && m == Upcoming {
		return false
	}
	if cells[week] == m {
		return false
	}
	cells[week] = m
	return true
}

// SetRowLabel sets the label shown beside row.
func (g *Grid) SetRowLabel(row int, text string) {
	if row < 0 || row >= len(g.Rows) {
		return
	}
	g.Rows[row].Label = text
}

// Cell returns the marker at (row, week), or Unmarked if out of range.
func (g *Grid) Cell(row, week int) Marker {
	if row < 0 || row >= len(g.Rows) {
		return Unmarked
	}
	cells := g.Rows[row].Cells
	if week < 0 || week >= len(cells) {
		return Unmarked
	}
	return cells[week]
}

// Count returns how many cells carry marker m.
func (g *Grid) Count(m Marker) int {
	n := 0
	for _, r := range g.Rows {
		for _, c := range r.Cells {
			if c == m {
				n++
			}
		}
	}
	return n
}

// FromChart lays out c: one row per year of the horizon sized to its week
// count, lived weeks Filled, upcoming weeks Upcoming, and every row up to the
// latest one touched labelled with its 1-based year.
func FromChart(c *lifechart.Chart) *Grid {
	g := New(c.Rows(), c.RowCapacity)

	maxRow := -1
	for cell := range c.Lived() {
		g.MarkCell(cell.YearOfLife, cell.WeekOfYear, Filled)
		maxRow = max(maxRow, cell.YearOfLife)
	}
	for cell := range c.Upcoming() {
		g.MarkCell(cell.YearOfLife, cell.WeekOfYear, Upcoming)
		maxRow = max(maxRow, cell.YearOfLife)
	}

	for row := 0; row <= maxRow && row < len(g.Rows); row++ {
		g.SetRowLabel(row, strconv.Itoa(row+1))
	}
	return g
}
