package booking

import (
	"time"

	"github.com/openfield/field-booking-backend/internal/pricing"
	"github.com/openfield/field-booking-backend/internal/schedule"
)

// AvailabilitySlot is one renderable cell of a field's daily grid.
// It is computed on demand and never persisted.
type AvailabilitySlot struct {
	StartTime   time.Time
	EndTime     time.Time
	Price       int64
	IsPeakHour  bool
	IsAvailable bool
	// Unpriced marks a slot not covered by any tier. Such a slot cannot be
	// booked but does not fail the rest of the grid.
	Unpriced bool
}

// BuildGrid partitions the field's operating window on the given date into
// consecutive slots and annotates each with price, peak flag and
// availability. Slots are returned in ascending start order. If the window
// does not divide evenly, the final slot is shortened to end exactly at
// close time.
//
// A slot is peak when its effective hourly rate exceeds the lowest tier rate
// for the date's day type. It is unavailable when any active booking for the
// field overlaps it.
func BuildGrid(
	date time.Time,
	openTime, closeTime string,
	granularity time.Duration,
	fieldID string,
	tiers []*pricing.PriceTier,
	bookings []*Booking,
) ([]AvailabilitySlot, error) {
	if granularity <= 0 {
		granularity = time.Hour
	}

	window, err := schedule.ClockIntervalOn(date, openTime, closeTime)
	if err != nil {
		return nil, err
	}

	dayType := schedule.ClassifyDate(date)
	minRate, hasTiers := pricing.MinHourlyRate(tiers, dayType)

	var slots []AvailabilitySlot
	for cursor := window.Start; cursor.Before(window.End); cursor = cursor.Add(granularity) {
		end := cursor.Add(granularity)
		if end.After(window.End) {
			end = window.End
		}
		slotIv := schedule.Interval{Start: cursor, End: end}

		slot := AvailabilitySlot{
			StartTime:   cursor,
			EndTime:     end,
			IsAvailable: !HasConflict(bookings, fieldID, slotIv),
		}

		quote, err := pricing.Resolve(tiers, dayType, slotIv)
		if err != nil {
			// Per-slot failure only: the slot is reported unpriced and
			// unbookable, the rest of the grid is unaffected.
			slot.Unpriced = true
			slot.IsAvailable = false
		} else {
			slot.Price = quote.Total
			// Compare hourly rates, not slot totals, so a short final slot
			// is not misread as off-peak.
			if hasTiers {
				slot.IsPeakHour = slot.Price*60 > minRate*slotIv.Minutes()
			}
		}

		slots = append(slots, slot)
	}

	return slots, nil
}
