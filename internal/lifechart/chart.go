// Package lifechart maps a birthdate onto a life calendar: one row per year
// of life, one cell per Sunday-aligned week. Rows are delimited by the
// Sunday of the week containing each birth anniversary, so a row holds 52 or
// 53 weeks.
package lifechart

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"time"
)

// Horizon limits, in years.
const (
	DefaultHorizon = 100
	MaxHorizon     = 120
)

// Row capacity bounds, in weeks.
const (
	MinRowWeeks = 52
	MaxRowWeeks = 53
)

// ErrInvalidBirthDate is returned when a birthdate does not parse or lies
// after the reference date.
var ErrInvalidBirthDate = errors.New("invalid birthdate")

// WeekCell places the week starting at Start in the grid.
type WeekCell struct {
	Start      time.Time `json:"start"`
	YearOfLife int       `json:"yearOfLife"`
	WeekOfYear int       `json:"weekOfYear"`
}

// Summary holds the counts derived from the lived and upcoming sequences.
type Summary struct {
	YearsLived             int `json:"yearsLived"`
	WeeksIntoCurrentYear   int `json:"weeksIntoCurrentYear"`
	TotalWeeksLived        int `json:"totalWeeksLived"`
	WeeksUntilNextBirthday int `json:"weeksUntilNextBirthday"`
}

// Chart is the result of one chart generation. It is read-only once
// returned by Compute.
type Chart struct {
	BirthDate     time.Time
	ReferenceDate time.Time
	NextBirthday  time.Time
	Horizon       int
	Boundaries    []time.Time
	Summary       Summary

	// lastLived is the start of the final lived week; zero when none.
	lastLived time.Time
}

// ClampHorizon maps non-positive horizons to DefaultHorizon and caps the
// rest at MaxHorizon.
func ClampHorizon(n int) int {
	switch {
	case n <= 0:
		return DefaultHorizon
	case n > MaxHorizon:
		return MaxHorizon
	default:
		return n
	}
}

// Compute builds the chart for birth as seen from ref. Both dates are
// normalized to UTC midnight and the horizon is clamped. A birthdate after
// ref yields ErrInvalidBirthDate and no chart.
func Compute(birth time.Time, horizon int, ref time.Time) (*Chart, error) {
	birth = Normalize(birth)
	ref = Normalize(ref)
	if birth.After(ref) {
		return nil, fmt.Errorf("%w: %s is after %s",
			ErrInvalidBirthDate, birth.Format(DateLayout), ref.Format(DateLayout))
	}
	horizon = ClampHorizon(horizon)

	c := &Chart{
		BirthDate:     birth,
		ReferenceDate: ref,
		NextBirthday:  NextBirthday(birth, ref),
		Horizon:       horizon,
		Boundaries:    YearBoundaries(birth, horizon),
	}
	c.summarize()
	return c, nil
}

// ComputeFor parses birthdate as YYYY-MM-DD and calls Compute.
func ComputeFor(birthdate string, horizon int, ref time.Time) (*Chart, error) {
	birth, err := ParseBirthDate(birthdate)
	if err != nil {
		return nil, err
	}
	return Compute(birth, horizon, ref)
}

// Rows returns the number of year-of-life rows.
func (c *Chart) Rows() int {
	return c.Horizon
}

// RowCapacity returns the number of weeks in row, between MinRowWeeks and
// MaxRowWeeks. Rows outside the chart have no capacity.
func (c *Chart) RowCapacity(row int) int {
	if row < 0 || row >= c.Horizon {
		return 0
	}
	n := weeksBetween(c.Boundaries[row], c.Boundaries[row+1])
	return min(max(n, MinRowWeeks), MaxRowWeeks)
}

// Lived yields every week from the birth week through the week containing
// the reference date, stopping early at the chart horizon.
func (c *Chart) Lived() iter.Seq[WeekCell] {
	return func(yield func(WeekCell) bool) {
		last := StartOfWeek(c.ReferenceDate)
		end := c.Boundaries[c.Horizon]
		for d := c.Boundaries[0]; !d.After(last) && d.Before(end); d = d.AddDate(0, 0, daysPerWeek) {
			if d.AddDate(0, 0, daysPerWeek-1).Before(c.BirthDate) {
				continue
			}
			cell, ok := c.cellAt(d)
			if !ok {
				continue
			}
			if !yield(cell) {
				return
			}
		}
	}
}

// Upcoming yields the weeks after the last lived week and before the next
// birthday. Weeks past the horizon are omitted.
func (c *Chart) Upcoming() iter.Seq[WeekCell] {
	return func(yield func(WeekCell) bool) {
		for d := c.upcomingStart(); d.Before(c.NextBirthday); d = d.AddDate(0, 0, daysPerWeek) {
			cell, ok := c.cellAt(d)
			if !ok {
				continue
			}
			if !yield(cell) {
				return
			}
		}
	}
}

func (c *Chart) upcomingStart() time.Time {
	start := firstSundayFrom(c.ReferenceDate)
	if c.lastLived.IsZero() {
		return start
	}
	if next := c.lastLived.AddDate(0, 0, daysPerWeek); next.After(start) {
		return next
	}
	return start
}

// cellAt resolves the row holding the week that starts on d. Weeks before
// the first boundary or on/after the last are not part of the chart.
func (c *Chart) cellAt(d time.Time) (WeekCell, bool) {
	i := sort.Search(len(c.Boundaries), func(i int) bool {
		return c.Boundaries[i].After(d)
	})
	row := i - 1
	if row < 0 || row >= c.Horizon {
		return WeekCell{}, false
	}
	return WeekCell{
		Start:      d,
		YearOfLife: row,
		WeekOfYear: weeksBetween(c.Boundaries[row], d),
	}, true
}

func (c *Chart) summarize() {
	var s Summary
	for cell := range c.Lived() {
		s.TotalWeeksLived++
		switch {
		case cell.YearOfLife > s.YearsLived:
			s.YearsLived = cell.YearOfLife
			s.WeeksIntoCurrentYear = 1
		case cell.YearOfLife == s.YearsLived:
			s.WeeksIntoCurrentYear++
		}
		c.lastLived = cell.Start
	}
	for range c.Upcoming() {
		s.WeeksUntilNextBirthday++
	}
	c.Summary = s
}
