package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDate(t *testing.T) {
	// 2024-01-01 is a Monday.
	cases := []struct {
		day  int
		want DayType
	}{
		{1, DayTypeWeekday}, // Monday
		{2, DayTypeWeekday}, // Tuesday
		{3, DayTypeWeekday}, // Wednesday
		{4, DayTypeWeekday}, // Thursday
		{5, DayTypeWeekday}, // Friday
		{6, DayTypeWeekend}, // Saturday
		{7, DayTypeWeekend}, // Sunday
	}

	for _, tc := range cases {
		date := time.Date(2024, 1, tc.day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, ClassifyDate(date), date.Weekday().String())
	}
}
