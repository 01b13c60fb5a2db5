package schedule

import "time"

// DayType groups calendar dates into the two pricing categories.
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// ClassifyDate maps a calendar date to its day type.
// Saturday and Sunday are weekend; everything else is weekday.
func ClassifyDate(date time.Time) DayType {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	default:
		return DayTypeWeekday
	}
}

// ValidDayTypes lists the accepted day type values for input validation.
var ValidDayTypes = []string{string(DayTypeWeekday), string(DayTypeWeekend)}
