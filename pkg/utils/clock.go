// utils/clock.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the size of the minute-of-day space; every clock value
// lives in [0, MinutesPerDay).
const MinutesPerDay = 1440

// NormalizeMinutes wraps any minute count into [0, 1440). Negative values
// wrap backwards into the previous day.
func NormalizeMinutes(m int) int {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("parse clock %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM", normalizing first.
func FormatClock(minutes int) string {
	m := NormalizeMinutes(minutes)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
