package lifechart

import "time"

// YearBoundaries returns horizon+1 Sunday-aligned dates; element i is the
// Sunday of the week containing the i-th birth anniversary. Each anniversary
// is derived from birth directly so month-end clamping never accumulates.
func YearBoundaries(birth time.Time, horizon int) []time.Time {
	bounds := make([]time.Time, horizon+1)
	for i := range bounds {
		bounds[i] = StartOfWeek(Anniversary(birth, i))
	}
	return bounds
}
