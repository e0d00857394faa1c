package locale

import (
	"errors"
	"fmt"
	"strings"
)

// Width selects one of the three day-period verbosity levels.
type Width int

const (
	Narrow Width = iota
	Abbreviated
	Wide
)

// Widths lists every width in display order.
var Widths = []Width{Narrow, Abbreviated, Wide}

func (w Width) String() string {
	switch w {
	case Narrow:
		return "narrow"
	case Abbreviated:
		return "abbreviated"
	case Wide:
		return "wide"
	}
	return fmt.Sprintf("Width(%d)", int(w))
}

// ParseWidth parses a width name as printed by Width.String.
func ParseWidth(s string) (Width, error) {
	for _, w := range Widths {
		if strings.EqualFold(s, w.String()) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown day-period width %q (expected narrow, abbreviated or wide)", s)
}

var (
	// ErrUnsupportedLocale is returned when no day-period data exists for a locale.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrInvalidLabels is returned when a label pair is empty or not distinct.
	ErrInvalidLabels = errors.New("invalid day-period labels")
)

// Provider returns the two day-period labels of a locale for a width.
// The first label is "before midday", the second "after midday".
type Provider interface {
	DayPeriods(localeID string, w Width) ([2]string, error)
}

// ValidateLabels checks that a pair holds two non-empty, distinct labels.
func ValidateLabels(labels [2]string) error {
	if labels[0] == "" || labels[1] == "" {
		return fmt.Errorf("%w: empty label in %q", ErrInvalidLabels, labels)
	}
	if labels[0] == labels[1] {
		return fmt.Errorf("%w: labels must differ, got %q twice", ErrInvalidLabels, labels[0])
	}
	return nil
}
