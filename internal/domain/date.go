package domain

import (
	"fmt"
	"time"
)

// DateKey is a calendar date in canonical "YYYY-MM-DD" form.
// Zero-padded, so lexicographic comparison equals chronological comparison.
type DateKey string

// DateKeyOf returns the wall-clock date of t
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(DateFormat))
}

// NewDateKey builds a key from year, month and day
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKeyOf(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// ParseDateKey validates a raw date and rejects non-canonical forms ("2024-4-1")
func ParseDateKey(raw string) (DateKey, error) {
	t, err := time.ParseInLocation(DateFormat, raw, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: invalid date %q", ErrValidation, raw)
	}
	key := DateKeyOf(t)
	if string(key) != raw {
		return "", fmt.Errorf("%w: non-canonical date %q", ErrValidation, raw)
	}
	return key, nil
}

// Time returns local midnight of the date
func (d DateKey) Time() time.Time {
	t, err := time.ParseInLocation(DateFormat, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays shifts the date by n calendar days
func (d DateKey) AddDays(n int) DateKey {
	return DateKeyOf(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of week of the date
func (d DateKey) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is strictly earlier than other
func (d DateKey) Before(other DateKey) bool {
	return d < other
}

// After reports whether d is strictly later than other
func (d DateKey) After(other DateKey) bool {
	return d > other
}

func (d DateKey) String() string {
	return string(d)
}
