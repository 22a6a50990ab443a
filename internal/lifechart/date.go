package lifechart

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for birthdates and reference dates.
const DateLayout = "2006-01-02"

const (
	daysPerWeek = 7
	week        = daysPerWeek * 24 * time.Hour
)

// Normalize returns UTC midnight of t's calendar date.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseBirthDate parses a YYYY-MM-DD string into a normalized date.
// Any parse failure is reported as ErrInvalidBirthDate.
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidBirthDate, s)
	}
	return t, nil
}

// StartOfWeek returns the Sunday at or before d.
func StartOfWeek(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Anniversary returns the date n years after birth. A day that does not
// exist in the target month (Feb 29 in a common year) falls back to the last
// day of that month.
func Anniversary(birth time.Time, n int) time.Time {
	y := birth.Year() + n
	m := birth.Month()
	d := min(birth.Day(), daysIn(y, m))
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextBirthday returns the first anniversary strictly after ref. A birthday
// falling on ref itself has already occurred.
func NextBirthday(birth, ref time.Time) time.Time {
	for n := max(ref.Year()-birth.Year(), 0); ; n++ {
		if a := Anniversary(birth, n); a.After(ref) {
			return a
		}
	}
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// firstSundayFrom returns the Sunday at or after d.
func firstSundayFrom(d time.Time) time.Time {
	if d.Weekday() == time.Sunday {
		return d
	}
	return d.AddDate(0, 0, daysPerWeek-int(d.Weekday()))
}

// weeksBetween counts whole weeks from a to b. Both must be UTC midnights.
func weeksBetween(a, b time.Time) int {
	return int(b.Sub(a) / week)
}
