package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfield/field-booking-backend/internal/schedule"
)

// wednesday anchors tests on a known weekday date.
var wednesday = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

func weekdayTiers() []*PriceTier {
	return []*PriceTier{
		{ID: "t1", FieldID: "f1", DayType: schedule.DayTypeWeekday, StartTime: "06:00:00", EndTime: "17:00:00", PricePerHour: 200000},
		{ID: "t2", FieldID: "f1", DayType: schedule.DayTypeWeekday, StartTime: "17:00:00", EndTime: "23:00:00", PricePerHour: 400000},
	}
}

func rangeOn(t *testing.T, date time.Time, startClock, endClock string) schedule.Interval {
	t.Helper()
	iv, err := schedule.ClockIntervalOn(date, startClock, endClock)
	require.NoError(t, err)
	return iv
}

func TestResolve(t *testing.T) {
	tiers := weekdayTiers()

	t.Run("single tier", func(t *testing.T) {
		q, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "10:00", "12:00"))
		require.NoError(t, err)
		assert.Equal(t, int64(400000), q.Total)
		assert.Equal(t, int64(120), q.CoveredMinutes)
	})

	t.Run("spans tier boundary", func(t *testing.T) {
		// One hour at 200000 plus one hour at 400000.
		q, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "16:00", "18:00"))
		require.NoError(t, err)
		assert.Equal(t, int64(600000), q.Total)
		assert.Equal(t, int64(120), q.CoveredMinutes)
	})

	t.Run("partial hour is prorated by minutes", func(t *testing.T) {
		q, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "10:00", "10:30"))
		require.NoError(t, err)
		assert.Equal(t, int64(100000), q.Total)
	})

	t.Run("price is additive across a split", func(t *testing.T) {
		whole, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "16:00", "18:00"))
		require.NoError(t, err)
		first, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "16:00", "17:00"))
		require.NoError(t, err)
		second, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "17:00", "18:00"))
		require.NoError(t, err)
		assert.Equal(t, whole.Total, first.Total+second.Total)
	})

	t.Run("price is additive across a mid-tier split", func(t *testing.T) {
		whole, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "10:00", "12:00"))
		require.NoError(t, err)
		first, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "10:00", "10:30"))
		require.NoError(t, err)
		second, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "10:30", "12:00"))
		require.NoError(t, err)
		assert.Equal(t, whole.Total, first.Total+second.Total)
	})

	t.Run("inexact contribution is refused instead of floored", func(t *testing.T) {
		// 200000 * 1 minute is not a whole number of currency units per
		// hour, so this must fail rather than quote a truncated total.
		_, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "10:00", "10:01"))
		assert.ErrorIs(t, err, ErrInexactPrice)
	})

	t.Run("uncovered range fails", func(t *testing.T) {
		_, err := Resolve(tiers, schedule.DayTypeWeekday, rangeOn(t, wednesday, "23:00", "23:30"))
		assert.ErrorIs(t, err, ErrUnpricedInterval)
	})

	t.Run("gap between tiers fails", func(t *testing.T) {
		gapped := []*PriceTier{
			{DayType: schedule.DayTypeWeekday, StartTime: "06:00:00", EndTime: "12:00:00", PricePerHour: 200000},
			{DayType: schedule.DayTypeWeekday, StartTime: "13:00:00", EndTime: "23:00:00", PricePerHour: 200000},
		}
		_, err := Resolve(gapped, schedule.DayTypeWeekday, rangeOn(t, wednesday, "11:00", "14:00"))
		assert.ErrorIs(t, err, ErrUnpricedInterval)
	})

	t.Run("wrong day type tiers are ignored", func(t *testing.T) {
		weekendOnly := []*PriceTier{
			{DayType: schedule.DayTypeWeekend, StartTime: "06:00:00", EndTime: "23:00:00", PricePerHour: 300000},
		}
		_, err := Resolve(weekendOnly, schedule.DayTypeWeekday, rangeOn(t, wednesday, "10:00", "11:00"))
		assert.ErrorIs(t, err, ErrUnpricedInterval)
	})

	t.Run("overlapping tiers fail instead of double charging", func(t *testing.T) {
		overlapping := append(weekdayTiers(), &PriceTier{
			DayType: schedule.DayTypeWeekday, StartTime: "16:00:00", EndTime: "18:00:00", PricePerHour: 100000,
		})
		_, err := Resolve(overlapping, schedule.DayTypeWeekday, rangeOn(t, wednesday, "16:30", "17:30"))
		assert.ErrorIs(t, err, ErrOverlappingTiers)
	})

	t.Run("sub-minute range is rejected", func(t *testing.T) {
		start := time.Date(2024, 1, 3, 10, 0, 30, 0, time.UTC)
		end := time.Date(2024, 1, 3, 11, 0, 30, 0, time.UTC)
		_, err := Resolve(tiers, schedule.DayTypeWeekday, schedule.Interval{Start: start, End: end})
		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})
}

func TestMinHourlyRate(t *testing.T) {
	tiers := weekdayTiers()

	rate, ok := MinHourlyRate(tiers, schedule.DayTypeWeekday)
	require.True(t, ok)
	assert.Equal(t, int64(200000), rate)

	_, ok = MinHourlyRate(tiers, schedule.DayTypeWeekend)
	assert.False(t, ok)
}
