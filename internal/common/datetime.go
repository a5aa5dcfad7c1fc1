package common

import (
	"fmt"
	"time"
)

// DateLayout
const (
	DateFormatYYYYMMDD                  = "2006-01-02"
	DateFormatYYYYMM                    = "2006-01"
	DateFormatYYYYMMDDWithTime          = "2006-01-02 15:04:05"
	DateFormatYYYYMMDDWithTimeAndOffset = "2006-01-02T15:04:05-07:00" // same as RFC3339/ISO8601
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

func Now() time.Time {
	return nowFunc().UTC()
}

// Today returns the current date truncated to midnight UTC.
func Today() time.Time {
	return StartOfDay(Now())
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay is the last nanosecond of the day, used for inclusive as-of filters.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

func ParseStringToDatetime(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidFormatDate, value)
	}
	return t, nil
}

// ParseDateOrToday parses YYYY-MM-DD, an empty value means today.
func ParseDateOrToday(value string) (time.Time, error) {
	if value == "" {
		return Today(), nil
	}
	return ParseStringToDatetime(DateFormatYYYYMMDD, value)
}
