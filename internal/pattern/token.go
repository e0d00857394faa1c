package pattern

import (
	"regexp"
	"sort"

	"github.com/Flyrell/timepattern/internal/locale"
)

// tokenFamily groups token kinds of which at most one may be honored.
type tokenFamily int

const (
	familyNone tokenFamily = iota
	familyPeriod
)

type tokenSpec struct {
	field  Field
	shape  *regexp.Regexp
	family tokenFamily
	width  locale.Width // period tokens only
}

// tokenSpecs is evaluated top to bottom. Within a family the first spec
// that finds a token suppresses the later ones, so day periods resolve
// narrow > wide > abbreviated.
var tokenSpecs = []tokenSpec{
	{field: FieldHour, shape: regexp.MustCompile(`(?i)h{1,2}`)}, // h, hh, H, HH
	{field: FieldMinute, shape: regexp.MustCompile(`m{1,2}`)},   // m, mm
	{field: FieldSecond, shape: regexp.MustCompile(`s{1,2}`)},   // s, ss
	{field: FieldPeriodNarrow, shape: regexp.MustCompile(`a{5}`), family: familyPeriod, width: locale.Narrow},
	{field: FieldPeriodWide, shape: regexp.MustCompile(`a{4}`), family: familyPeriod, width: locale.Wide},
	{field: FieldPeriodAbbreviated, shape: regexp.MustCompile(`a{1,3}`), family: familyPeriod, width: locale.Abbreviated},
}

// token is one detected occurrence; start and end are byte offsets into
// the raw pattern.
type token struct {
	spec       *tokenSpec
	start, end int
}

// detectTokens finds the first occurrence of every token kind in the raw
// pattern and returns them in left-to-right order. There is no quoting:
// any substring with a token's shape is that token.
func detectTokens(pattern string) []token {
	var tokens []token
	found := map[tokenFamily]bool{}

	for i := range tokenSpecs {
		spec := &tokenSpecs[i]
		if spec.family != familyNone && found[spec.family] {
			continue
		}
		loc := spec.shape.FindStringIndex(pattern)
		if loc == nil {
			continue
		}
		if spec.family != familyNone {
			found[spec.family] = true
		}
		tokens = append(tokens, token{spec: spec, start: loc[0], end: loc[1]})
	}

	// Token shapes use disjoint letters, so spans never overlap.
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].start < tokens[j].start
	})
	return tokens
}
