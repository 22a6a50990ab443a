// Package share encodes a life calendar's inputs as URL query parameters so
// a chart can be bookmarked or sent as a link.
package share

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names.
const (
	ParamBirthDate = "birthdate"
	ParamEndYear   = "endYear"
)

// Params are the shareable chart inputs. A zero EndYear means "use the
// default horizon".
type Params struct {
	BirthDate string
	EndYear   int
}

// ParseQuery extracts Params from q. A missing or non-numeric endYear is
// left at zero.
func ParseQuery(q url.Values) Params {
	p := Params{BirthDate: strings.TrimSpace(q.Get(ParamBirthDate))}
	if v := q.Get(ParamEndYear); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.EndYear = n
		}
	}
	return p
}

// Apply writes p into q, removing endYear when it is zero.
func (p Params) Apply(q url.Values) {
	q.Set(ParamBirthDate, p.BirthDate)
	if p.EndYear > 0 {
		q.Set(ParamEndYear, strconv.Itoa(p.EndYear))
	} else {
		q.Del(ParamEndYear)
	}
}

// Link returns base with p merged into its query string. Other query
// parameters on base are preserved.
func Link(base string, p Params) (string, error) {
	if p.BirthDate == "" {
		return "", fmt.Errorf("share: birthdate is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("share: parse base url %q: %w", base, err)
	}
	q := u.Query()
	p.Apply(q)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
