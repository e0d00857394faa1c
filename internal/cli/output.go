package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Flyrell/timepattern/internal/pattern"
)

// formatResult renders the present fields as "hour=3 minute=15 period=PM".
func formatResult(r pattern.Result) string {
	var parts []string
	add := func(name string, v *int) {
		if v != nil {
			parts = append(parts, name+"="+Capture(strconv.Itoa(*v)))
		}
	}
	add("hour", r.Hour)
	add("minute", r.Minute)
	add("second", r.Second)
	if r.Period != nil {
		parts = append(parts, "period="+Capture(r.Period.String()))
	}
	if len(parts) == 0 {
		return Silent("(no fields)")
	}
	return strings.Join(parts, " ")
}

// formatGroups renders the capture groups of a field map as "1 hour, 2 minute".
func formatGroups(fm pattern.FieldMap) string {
	ordered := fm.Ordered()
	if len(ordered) == 0 {
		return Silent("(none)")
	}
	parts := make([]string, len(ordered))
	for i, f := range ordered {
		parts[i] = fmt.Sprintf("%d %s", fm.Position(f)+1, f)
	}
	return strings.Join(parts, ", ")
}
