package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfield/field-booking-backend/internal/pricing"
	"github.com/openfield/field-booking-backend/internal/schedule"
)

// 2024-01-03 is a Wednesday.
var gridDate = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

func gridTiers() []*pricing.PriceTier {
	return []*pricing.PriceTier{
		{DayType: schedule.DayTypeWeekday, StartTime: "06:00:00", EndTime: "17:00:00", PricePerHour: 200000},
		{DayType: schedule.DayTypeWeekday, StartTime: "17:00:00", EndTime: "23:00:00", PricePerHour: 400000},
	}
}

func TestBuildGrid(t *testing.T) {
	t.Run("hourly grid covers the operating window", func(t *testing.T) {
		slots, err := BuildGrid(gridDate, "06:00:00", "23:00:00", time.Hour, "f1", gridTiers(), nil)
		require.NoError(t, err)
		require.Len(t, slots, 17)

		// Slots are contiguous and ascending.
		for i, slot := range slots {
			assert.Equal(t, gridDate.Add(time.Duration(6+i)*time.Hour), slot.StartTime)
			if i > 0 {
				assert.Equal(t, slots[i-1].EndTime, slot.StartTime)
			}
			assert.True(t, slot.IsAvailable)
			assert.False(t, slot.Unpriced)
		}

		// Off-peak slots carry the base rate, evening slots the higher one.
		assert.Equal(t, int64(200000), slots[0].Price)
		assert.False(t, slots[0].IsPeakHour)
		assert.Equal(t, int64(400000), slots[11].Price) // 17:00-18:00
		assert.True(t, slots[11].IsPeakHour)
	})

	t.Run("booked slots are unavailable", func(t *testing.T) {
		bookings := []*Booking{
			{FieldID: "f1", Status: StatusPending, StartTime: at(10, 0), EndTime: at(11, 0)},
			{FieldID: "f1", Status: StatusCancelled, StartTime: at(12, 0), EndTime: at(13, 0)},
		}

		slots, err := BuildGrid(gridDate, "06:00:00", "23:00:00", time.Hour, "f1", gridTiers(), bookings)
		require.NoError(t, err)

		assert.False(t, slots[4].IsAvailable, "10:00-11:00 overlaps a pending booking")
		assert.True(t, slots[6].IsAvailable, "cancelled bookings do not block")
	})

	t.Run("partial final slot is truncated at close", func(t *testing.T) {
		slots, err := BuildGrid(gridDate, "06:00:00", "22:30:00", time.Hour, "f1", gridTiers(), nil)
		require.NoError(t, err)
		require.Len(t, slots, 17)

		last := slots[len(slots)-1]
		assert.Equal(t, gridDate.Add(22*time.Hour), last.StartTime)
		assert.Equal(t, gridDate.Add(22*time.Hour+30*time.Minute), last.EndTime)
		assert.Equal(t, int64(200000), last.Price, "half an hour at 400000/h")
		assert.True(t, last.IsPeakHour, "peak compares hourly rates, not slot totals")
	})

	t.Run("uncovered slot is unpriced but does not fail the grid", func(t *testing.T) {
		morningOnly := []*pricing.PriceTier{
			{DayType: schedule.DayTypeWeekday, StartTime: "06:00:00", EndTime: "17:00:00", PricePerHour: 200000},
		}

		slots, err := BuildGrid(gridDate, "06:00:00", "23:00:00", time.Hour, "f1", morningOnly, nil)
		require.NoError(t, err)
		require.Len(t, slots, 17)

		assert.False(t, slots[4].Unpriced, "10:00 slot is covered")
		evening := slots[11] // 17:00-18:00
		assert.True(t, evening.Unpriced)
		assert.False(t, evening.IsAvailable, "unpriced slots cannot be booked")
	})

	t.Run("weekend date uses weekend tiers", func(t *testing.T) {
		// 2024-01-06 is a Saturday.
		saturday := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
		weekend := []*pricing.PriceTier{
			{DayType: schedule.DayTypeWeekend, StartTime: "06:00:00", EndTime: "23:00:00", PricePerHour: 300000},
		}

		slots, err := BuildGrid(saturday, "06:00:00", "23:00:00", time.Hour, "f1", weekend, nil)
		require.NoError(t, err)
		for _, slot := range slots {
			assert.Equal(t, int64(300000), slot.Price)
			assert.False(t, slot.Unpriced)
		}
	})

	t.Run("invalid operating window", func(t *testing.T) {
		_, err := BuildGrid(gridDate, "23:00:00", "06:00:00", time.Hour, "f1", gridTiers(), nil)
		assert.Error(t, err)
	})
}
