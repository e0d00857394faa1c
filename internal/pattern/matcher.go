package pattern

import (
	"regexp"
	"strconv"

	"github.com/Flyrell/timepattern/internal/locale"
)

// DayPeriod is a decoded day-period label.
type DayPeriod int

const (
	BeforeMidday DayPeriod = 0
	AfterMidday  DayPeriod = 1
)

func (p DayPeriod) String() string {
	if p == AfterMidday {
		return "PM"
	}
	return "AM"
}

// Result holds the fields extracted from one input. A nil field was either
// absent from the pattern or not captured.
type Result struct {
	Hour   *int       `json:"hour"`
	Minute *int       `json:"minute"`
	Second *int       `json:"second"`
	Period *DayPeriod `json:"period"`
}

type periodLabels struct {
	field  Field
	width  locale.Width
	labels [2]string
}

// Matcher is a compiled format pattern. It is immutable and safe for
// concurrent use; every Extract runs a fresh match.
type Matcher struct {
	pattern  string
	localeID string
	re       *regexp.Regexp
	fields   FieldMap
	period   *periodLabels // nil without a day-period token
}

// Pattern returns the format pattern the matcher was compiled from.
func (m *Matcher) Pattern() string { return m.pattern }

// Locale returns the locale id the matcher was compiled for.
func (m *Matcher) Locale() string { return m.localeID }

// Regexp returns the source of the compiled expression.
func (m *Matcher) Regexp() string { return m.re.String() }

// Fields returns a copy of the field map.
func (m *Matcher) Fields() FieldMap { return m.fields }

// DayPeriods returns the width and labels used for the day-period token.
// ok is false when the pattern has no day-period token.
func (m *Matcher) DayPeriods() (w locale.Width, labels [2]string, ok bool) {
	if m.period == nil {
		return 0, [2]string{}, false
	}
	return m.period.width, m.period.labels, true
}

// Extract runs the matcher against input. The second return value is false
// when the input does not conform to the pattern.
func (m *Matcher) Extract(input string) (Result, bool) {
	match := m.re.FindStringSubmatch(input)
	if match == nil {
		return Result{}, false
	}

	res := Result{
		Hour:   m.number(match, FieldHour),
		Minute: m.number(match, FieldMinute),
		Second: m.number(match, FieldSecond),
	}
	if m.period != nil {
		res.Period = m.decodePeriod(match)
	}
	return res, true
}

func (m *Matcher) capture(match []string, f Field) string {
	pos := m.fields.Position(f)
	if pos == Absent || pos+1 >= len(match) {
		return ""
	}
	return match[pos+1]
}

func (m *Matcher) number(match []string, f Field) *int {
	s := m.capture(match, f)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// decodePeriod maps the captured label onto its index in the label pair.
// A label outside the pair yields nil rather than a guessed period.
func (m *Matcher) decodePeriod(match []string) *DayPeriod {
	s := m.capture(match, m.period.field)
	for i, label := range m.period.labels {
		if s == label {
			p := DayPeriod(i)
			return &p
		}
	}
	return nil
}
