package schedule

import (
	"net/http"
	"time"

	"github.com/openfield/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidClock = apperror.New(http.StatusBadRequest, "invalid time of day, expected HH:MM or HH:MM:SS")
)

// ParseClock parses a time-of-day string ("HH:MM:SS" or "HH:MM") into a
// time.Time carrying only the clock components.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return time.Time{}, ErrInvalidClock
	}
	return t, nil
}

// OnDate anchors a parsed clock time onto the given calendar date,
// keeping the date's location.
func OnDate(clock time.Time, date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		date.Location(),
	)
}

// ClockIntervalOn converts a pair of time-of-day strings into an absolute
// Interval on the given date. Used for operating windows and price tiers,
// which are stored as TIME columns.
func ClockIntervalOn(date time.Time, startClock, endClock string) (Interval, error) {
	start, err := ParseClock(startClock)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseClock(endClock)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(OnDate(start, date), OnDate(end, date))
}
