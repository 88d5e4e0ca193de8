// ABOUTME: Date-key helpers shared by date-indexed slices.
// ABOUTME: Keys use the YYYY-MM-DD calendar-date form in local time.
package models

import "time"

// DateKey formats a time as the calendar-date key used across slices.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Today returns the date key for the current local day.
func Today() string {
	return DateKey(time.Now())
}

// ValidDateKey reports whether s parses as a YYYY-MM-DD date.
func ValidDateKey(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
