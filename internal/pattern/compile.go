package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Flyrell/timepattern/internal/locale"
)

const digitCapture = `(\d{1,2})`

// Compile translates a format pattern such as "HH:mm:ss" or "h:mm a" into
// a Matcher. Day-period labels are looked up from provider only when the
// pattern holds a day-period token; a provider failure fails the compile.
//
// Every character outside a token is matched literally. The resulting
// expression is not anchored, so it may match anywhere in the input.
func Compile(pattern, localeID string, provider locale.Provider) (*Matcher, error) {
	m := &Matcher{
		pattern:  pattern,
		localeID: localeID,
		fields:   emptyFieldMap(),
	}

	var b strings.Builder
	last := 0
	for i, tok := range detectTokens(pattern) {
		m.fields[tok.spec.field] = i
		b.WriteString(regexp.QuoteMeta(pattern[last:tok.start]))
		last = tok.end

		if tok.spec.family != familyPeriod {
			b.WriteString(digitCapture)
			continue
		}

		labels, err := provider.DayPeriods(localeID, tok.spec.width)
		if err != nil {
			return nil, fmt.Errorf("compiling %q: %s day periods for %q: %w", pattern, tok.spec.width, localeID, err)
		}
		if err := locale.ValidateLabels(labels); err != nil {
			return nil, fmt.Errorf("compiling %q: %s day periods for %q: %w", pattern, tok.spec.width, localeID, err)
		}
		m.period = &periodLabels{field: tok.spec.field, width: tok.spec.width, labels: labels}
		b.WriteString("(" + regexp.QuoteMeta(labels[0]) + "|" + regexp.QuoteMeta(labels[1]) + ")")
	}
	b.WriteString(regexp.QuoteMeta(pattern[last:]))

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", pattern, err)
	}
	m.re = re
	return m, nil
}

// MustCompile is like Compile but panics on error.
// It simplifies initialization of package-level matchers.
func MustCompile(pattern, localeID string, provider locale.Provider) *Matcher {
	m, err := Compile(pattern, localeID, provider)
	if err != nil {
		panic(err)
	}
	return m
}
