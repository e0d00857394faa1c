package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// Field identifies a semantic time field a pattern token maps to.
type Field int

const (
	FieldHour Field = iota
	FieldMinute
	FieldSecond
	FieldPeriodNarrow
	FieldPeriodWide
	FieldPeriodAbbreviated

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldHour:              "hour",
	FieldMinute:            "minute",
	FieldSecond:            "second",
	FieldPeriodNarrow:      "periodNarrow",
	FieldPeriodWide:        "periodWide",
	FieldPeriodAbbreviated: "periodAbbreviated",
}

// Fields lists every field in declaration order.
var Fields = []Field{FieldHour, FieldMinute, FieldSecond, FieldPeriodNarrow, FieldPeriodWide, FieldPeriodAbbreviated}

func (f Field) String() string {
	if f >= 0 && f < fieldCount {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Absent marks a field whose token was not found in the pattern.
const Absent = -1

// FieldMap records, per field, the 0-based capture position of its token,
// or Absent. Positions follow the left-to-right order of the tokens.
type FieldMap [fieldCount]int

func emptyFieldMap() FieldMap {
	var fm FieldMap
	for i := range fm {
		fm[i] = Absent
	}
	return fm
}

// Position returns the capture position of f, or Absent.
func (fm FieldMap) Position(f Field) int {
	if f < 0 || f >= fieldCount {
		return Absent
	}
	return fm[f]
}

// Has reports whether the pattern contained a token for f.
func (fm FieldMap) Has(f Field) bool {
	return fm.Position(f) != Absent
}

// Ordered returns the present fields in capture-group order.
func (fm FieldMap) Ordered() []Field {
	var out []Field
	for _, f := range Fields {
		if fm.Has(f) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return fm[out[i]] < fm[out[j]] })
	return out
}

// String renders the map as "hour=0 minute=1 ...", skipping absent fields.
func (fm FieldMap) String() string {
	var parts []string
	for _, f := range Fields {
		if fm.Has(f) {
			parts = append(parts, fmt.Sprintf("%s=%d", f, fm[f]))
		}
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}
