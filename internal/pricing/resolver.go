package pricing

import (
	"github.com/openfield/field-booking-backend/internal/schedule"
)

// Quote is the result of pricing a time range against a field's tiers.
type Quote struct {
	Total          int64
	CoveredMinutes int64
}

// Resolve prices the requested interval against the field's tiers for the
// given day type. Each overlapping tier contributes its hourly rate prorated
// by the overlapping minutes. The whole interval must be covered: any gap
// yields ErrUnpricedInterval instead of a partial price.
//
// Overlapping tiers of the same day type are a configuration error and fail
// with ErrOverlappingTiers. Summing both (the legacy behavior) would silently
// double-charge the overlap, so resolution refuses instead.
//
// Callers must pass minute-aligned intervals; tier times are stored at minute
// precision, so sub-minute requests cannot be priced exactly.
//
// Proration is exact: a tier contributes PricePerHour*minutes/60 only when
// that product divides evenly. An inexact contribution fails with
// ErrInexactPrice instead of being floored, so every total a caller sees is
// exact integer arithmetic and splitting an interval at any priceable point
// sums to the price of the whole.
func Resolve(tiers []*PriceTier, dayType schedule.DayType, req schedule.Interval) (*Quote, error) {
	if req.Start.Second() != 0 || req.Start.Nanosecond() != 0 ||
		req.End.Second() != 0 || req.End.Nanosecond() != 0 {
		return nil, schedule.ErrInvalidInterval
	}

	date := req.Start
	var matched []schedule.Interval
	var total int64
	var covered int64

	for _, tier := range tiers {
		if tier.DayType != dayType {
			continue
		}
		tierIv, err := tier.IntervalOn(date)
		if err != nil {
			return nil, err
		}

		part, ok := tierIv.Intersect(req)
		if !ok {
			continue
		}

		for _, prev := range matched {
			if prev.Overlaps(tierIv) {
				return nil, ErrOverlappingTiers
			}
		}
		matched = append(matched, tierIv)

		minutes := part.Minutes()
		contribution := tier.PricePerHour * minutes
		if contribution%60 != 0 {
			return nil, ErrInexactPrice
		}
		total += contribution / 60
		covered += minutes
	}

	if covered < req.Minutes() {
		return nil, ErrUnpricedInterval
	}

	return &Quote{Total: total, CoveredMinutes: covered}, nil
}

// MinHourlyRate returns the lowest hourly rate among the field's tiers for
// the given day type. The second return value is false when no tier matches.
// The availability grid uses this as the off-peak baseline.
func MinHourlyRate(tiers []*PriceTier, dayType schedule.DayType) (int64, bool) {
	var min int64
	found := false
	for _, tier := range tiers {
		if tier.DayType != dayType {
			continue
		}
		if !found || tier.PricePerHour < min {
			min = tier.PricePerHour
			found = true
		}
	}
	return min, found
}
