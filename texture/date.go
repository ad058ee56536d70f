package texture

import (
	"time"

	"golang.org/x/text/language"
)

// Short numeric date layouts, one per supported locale. The first entry is
// the fallback.
var dateLocales = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.BrazilianPortuguese, "02/01/2006"},
	{language.Russian, "02.01.2006"},
	{language.Dutch, "2-1-2006"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
	{language.Korean, "2006. 1. 2."},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLocales))
	for i, l := range dateLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// FormatDate renders the calendar date of t in the short numeric form used by
// the given locale. Locales without a close match use the US form.
func FormatDate(t time.Time, locale language.Tag) string {
	_, idx, conf := dateMatcher.Match(locale)
	if conf == language.No {
		idx = 0
	}
	return t.Format(dateLocales[idx].layout)
}
