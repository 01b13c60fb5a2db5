package schedule

import (
	"net/http"
	"time"

	"github.com/openfield/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidInterval = apperror.New(http.StatusBadRequest, "start time must be before end time")
)

// Interval is a half-open time range [Start, End).
// The exclusive upper bound lets back-to-back bookings share an endpoint
// without counting as an overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an Interval and rejects zero-length or inverted ranges.
func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two intervals share any instant.
// Touching endpoints do not overlap: [a,b) and [b,c) are disjoint.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Contains reports whether t falls inside the interval (Start inclusive, End exclusive).
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Duration returns the interval length.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Minutes returns the interval length in whole minutes.
func (i Interval) Minutes() int64 {
	return int64(i.Duration() / time.Minute)
}

// Intersect returns the overlapping portion of the two intervals.
// The second return value is false when they do not overlap.
func (i Interval) Intersect(o Interval) (Interval, bool) {
	if !i.Overlaps(o) {
		return Interval{}, false
	}
	start := i.Start
	if o.Start.After(start) {
		start = o.Start
	}
	end := i.End
	if o.End.Before(end) {
		end = o.End
	}
	return Interval{Start: start, End: end}, true
}
