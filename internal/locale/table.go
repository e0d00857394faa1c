package locale

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// dayPeriodSet holds the label pairs of one locale, indexed by Width.
type dayPeriodSet [3][2]string

func uniform(before, after string) dayPeriodSet {
	p := [2]string{before, after}
	return dayPeriodSet{p, p, p}
}

// Format-context day periods from CLDR. Spanish separates the letters
// with U+00A0, as CLDR does.
var builtinDayPeriods = map[string]dayPeriodSet{
	"en":    {{"a", "p"}, {"AM", "PM"}, {"AM", "PM"}},
	"en-GB": {{"a", "p"}, {"am", "pm"}, {"am", "pm"}},
	"de":    uniform("AM", "PM"),
	"es":    uniform("a.\u00a0m.", "p.\u00a0m."),
	"fr":    uniform("AM", "PM"),
	"it":    {{"m.", "p."}, {"AM", "PM"}, {"AM", "PM"}},
	"ja":    uniform("午前", "午後"),
	"ko":    {{"AM", "PM"}, {"오전", "오후"}, {"오전", "오후"}},
	"nl":    uniform("a.m.", "p.m."),
	"pl":    uniform("AM", "PM"),
	"pt":    uniform("AM", "PM"),
	"ru":    uniform("AM", "PM"),
	"sv":    uniform("fm", "em"),
	"zh":    uniform("上午", "下午"),
}

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Table is a Provider backed by a fixed set of locales. Locale ids are
// matched against the set with BCP 47 fallback, so "en-US" resolves to "en".
type Table struct {
	ids     []string
	tags    []language.Tag
	data    map[string]dayPeriodSet
	matcher language.Matcher
}

// Builtin returns the Provider for the bundled CLDR locales.
func Builtin() *Table {
	return newTable(builtinDayPeriods)
}

func newTable(data map[string]dayPeriodSet) *Table {
	ids := make([]string, 0, len(data))
	for id := range data {
		if id != DefaultLocale {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	// The matcher falls back to its first tag, so the default goes first.
	if _, ok := data[DefaultLocale]; ok {
		ids = append([]string{DefaultLocale}, ids...)
	}

	tags := make([]language.Tag, len(ids))
	for i, id := range ids {
		tags[i] = language.MustParse(id)
	}

	return &Table{
		ids:     ids,
		tags:    tags,
		data:    data,
		matcher: language.NewMatcher(tags),
	}
}

// Supported returns the locale ids the table holds data for.
func (t *Table) Supported() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Resolve maps a locale id onto the closest supported locale. Only region
// and script variants fall back; a different language is unsupported even
// when the matcher deems it mutually intelligible ("gl" is not "es").
func (t *Table) Resolve(localeID string) (string, error) {
	tag, err := language.Parse(localeID)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, localeID, err)
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, localeID)
	}
	want, _ := tag.Base()
	got, _ := t.tags[idx].Base()
	if want != got {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, localeID)
	}
	return t.ids[idx], nil
}

// DayPeriods implements Provider.
func (t *Table) DayPeriods(localeID string, w Width) ([2]string, error) {
	if w < Narrow || w > Wide {
		return [2]string{}, fmt.Errorf("unknown day-period width %d", int(w))
	}
	id, err := t.Resolve(localeID)
	if err != nil {
		return [2]string{}, err
	}
	labels := t.data[id][w]
	if err := ValidateLabels(labels); err != nil {
		return [2]string{}, fmt.Errorf("locale %s, %s: %w", id, w, err)
	}
	return labels, nil
}
