package booking

import (
	"time"

	"github.com/openfield/field-booking-backend/internal/schedule"
)

// HasConflict reports whether the candidate interval overlaps any active
// booking on the given field. All four overlap shapes conflict (candidate
// inside existing, existing inside candidate, partial at either edge);
// abutting intervals do not, since intervals are half-open.
//
// This is the advisory in-memory check. The authoritative check runs inside
// the creation transaction against freshly read rows (see Repository.
// CreateWithConflictCheck).
func HasConflict(bookings []*Booking, fieldID string, candidate schedule.Interval) bool {
	for _, b := range bookings {
		if b.FieldID != fieldID || !b.Status.IsActive() {
			continue
		}
		existing := schedule.Interval{Start: b.StartTime, End: b.EndTime}
		if existing.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// AssertBookable validates a candidate interval against the evaluation
// instant. The instant is a parameter, not an ambient clock, so callers and
// tests control it.
func AssertBookable(candidate schedule.Interval, now time.Time) error {
	if !candidate.Start.Before(candidate.End) {
		return ErrInvalidTimeRange
	}
	if !candidate.Start.After(now) {
		return ErrStartTimePast
	}
	if candidate.Start.Second() != 0 || candidate.Start.Nanosecond() != 0 ||
		candidate.End.Second() != 0 || candidate.End.Nanosecond() != 0 {
		return ErrNotMinuteAligned
	}
	return nil
}
