package lifechart

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// DateFormatter renders a date for display.
type DateFormatter interface {
	FormatDate(t time.Time) string
}

// Describe renders the one-line summary shown beside the grid.
func Describe(c *Chart, f DateFormatter) string {
	s := c.Summary
	if s.TotalWeeksLived == 0 {
		return fmt.Sprintf("Born on %s. Chart shows weeks starting from the Sunday of your birth week. %s until your next birthday on %s.",
			f.FormatDate(c.BirthDate), weeks(s.WeeksUntilNextBirthday), f.FormatDate(c.NextBirthday))
	}
	return fmt.Sprintf("From %s to %s, you have lived %s and %s (%s total). %s until your next birthday on %s.",
		f.FormatDate(c.BirthDate),
		f.FormatDate(c.ReferenceDate),
		plural(s.YearsLived, "year"),
		weeks(s.WeeksIntoCurrentYear),
		weeks(s.TotalWeeksLived),
		weeks(s.WeeksUntilNextBirthday),
		f.FormatDate(c.NextBirthday),
	)
}

func weeks(n int) string {
	return plural(n, "week")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return humanize.Comma(int64(n)) + " " + unit + "s"
}
