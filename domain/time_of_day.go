package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hours   int
	Minutes int
}

// ParseTimeOfDay parses an "HH:MM" string. The single-digit hour form "7:30"
// is accepted as well.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("time of day %q must be HH:MM", value)
	}
	if len(h) == 0 || len(h) > 2 || len(m) != 2 || !allDigits(h) || !allDigits(m) {
		return TimeOfDay{}, fmt.Errorf("time of day %q must be HH:MM", value)
	}

	hours, err := strconv.Atoi(h)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("hours in %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("minutes in %q: %w", value, err)
	}

	t := TimeOfDay{Hours: hours, Minutes: minutes}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", value)
	}
	return t, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (t TimeOfDay) Valid() bool {
	return t.Hours >= 0 && t.Hours <= 23 && t.Minutes >= 0 && t.Minutes <= 59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}
