package clock

import (
	"fmt"

	"github.com/Flyrell/timepattern/internal/pattern"
)

// TimeOfDay represents a clock time without a date component.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// String returns TimeOfDay in "HH:MM:SS" format.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds() < other.seconds()
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// FromResult converts an extraction result into a 24-hour TimeOfDay.
// Absent fields count as zero. With a day period the hour must be in
// 1-12; without one it must be in 0-23.
func FromResult(r pattern.Result) (TimeOfDay, error) {
	hour := valueOrZero(r.Hour)
	minute := valueOrZero(r.Minute)
	second := valueOrZero(r.Second)

	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("second %d out of range", second)
	}

	if r.Period == nil {
		if hour < 0 || hour > 23 {
			return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
		}
		return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
	}

	if r.Hour == nil {
		return TimeOfDay{}, fmt.Errorf("day period %s without an hour", *r.Period)
	}
	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range for 12-hour format", hour)
	}

	if *r.Period == pattern.BeforeMidday {
		if hour == 12 {
			hour = 0
		}
	} else {
		if hour != 12 {
			hour += 12
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

func valueOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
