package lifechart

import (
	"testing"
	"time"
)

type isoFormatter struct{}

func (isoFormatter) FormatDate(t time.Time) string { return t.Format(DateLayout) }

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		birth time.Time
		ref   time.Time
		want  string
	}{
		{
			name:  "fortieth birthday",
			birth: date(1985, time.June, 15),
			ref:   date(2025, time.June, 15),
			want: "From 1985-06-15 to 2025-06-15, you have lived 40 years and 1 week (2,089 weeks total). " +
				"52 weeks until your next birthday on 2026-06-15.",
		},
		{
			name:  "born today",
			birth: date(2000, time.January, 1),
			ref:   date(2000, time.January, 1),
			want: "From 2000-01-01 to 2000-01-01, you have lived 0 years and 1 week (1 week total). " +
				"53 weeks until your next birthday on 2001-01-01.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := mustCompute(t, tt.birth, 100, tt.ref)
			if got := Describe(c, isoFormatter{}); got != tt.want {
				t.Errorf("Describe =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}
