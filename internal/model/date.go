package model

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("model: invalid date, expected YYYY-MM-DD")

// ParseDate parses a YYYY-MM-DD calendar date, normalized to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.UTC(), nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DayKey is the map key a habit uses to record a completed day.
func DayKey(t time.Time) string {
	return t.Format(dateLayout)
}

// Day truncates a timestamp to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
