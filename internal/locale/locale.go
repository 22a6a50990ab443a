// Package locale formats dates for display according to a BCP 47 language
// tag.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// ISOLayout is used when no supported locale matches.
const ISOLayout = "2006-01-02"

// supported pairs each matchable tag with its numeric date layout.
var supported = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Dutch, "2-1-2006"},
	{language.Japanese, "2006/01/02"},
	{language.Chinese, "2006/1/2"},
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return tags
}

// Formatter renders dates in a locale's short numeric form.
type Formatter struct {
	tag    language.Tag
	layout string
}

// New returns a Formatter for the given tag. An empty tag selects ISO dates.
// Tags that parse but match no supported locale also fall back to ISO.
func New(tag string) (*Formatter, error) {
	if tag == "" {
		return &Formatter{tag: language.Und, layout: ISOLayout}, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("locale: parse %q: %w", tag, err)
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return &Formatter{tag: t, layout: ISOLayout}, nil
	}
	return &Formatter{tag: t, layout: supported[idx].layout}, nil
}

// ISO returns a Formatter that always renders YYYY-MM-DD.
func ISO() *Formatter {
	return &Formatter{tag: language.Und, layout: ISOLayout}
}

// FormatDate renders t using the matched layout.
func (f *Formatter) FormatDate(t time.Time) string {
	return t.Format(f.layout)
}

// Tag returns the requested language tag.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}
