package models

import (
	"fmt"
	"time"
)

// MinuteOfDay is a naive wall-clock time expressed as minutes from midnight.
// It marshals to and from "HH:MM" in JSON.
type MinuteOfDay int

const minutesPerDay = 24 * 60

// ParseMinuteOfDay parses a "HH:MM" string.
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return MinuteOfDay(hours*60 + minutes), nil
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Valid reports whether the value falls within a single day.
func (m MinuteOfDay) Valid() bool {
	return m >= 0 && m <= minutesPerDay
}

func (m MinuteOfDay) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

func (m *MinuteOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if _, err := fmt.Sscanf(string(data), "%q", &s); err != nil {
		return fmt.Errorf("invalid time value %s", data)
	}
	parsed, err := ParseMinuteOfDay(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

const dateLayout = "2006-01-02"

// ValidateDate checks that date is a well-formed "YYYY-MM-DD" calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return nil
}

// DayOfWeekOf returns the day of week for a "YYYY-MM-DD" date,
// using the 0=Sunday..6=Saturday convention.
func DayOfWeekOf(date string) (int, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return int(t.Weekday()), nil
}
