package pricing

import (
	"net/http"
	"time"

	"github.com/openfield/field-booking-backend/internal/pkg/apperror"
	"github.com/openfield/field-booking-backend/internal/schedule"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "price tier not found")
	ErrUnpricedInterval = apperror.New(http.StatusUnprocessableEntity, "requested time range is not fully covered by price tiers")
	ErrOverlappingTiers = apperror.New(http.StatusUnprocessableEntity, "price tiers for the same day type overlap")
	ErrInexactPrice     = apperror.New(http.StatusUnprocessableEntity, "price for this time range is not a whole number of currency units")
	ErrInvalidDayType   = apperror.New(http.StatusBadRequest, "day type must be weekday or weekend")
	ErrInvalidPrice     = apperror.New(http.StatusBadRequest, "price per hour must not be negative")
	ErrFieldNotFound    = apperror.New(http.StatusNotFound, "field not found")
)

// PriceTier is one pricing rule for a field: a time-of-day range on either
// weekdays or weekends, billed at a fixed hourly rate.
// Prices are integer minor currency units.
type PriceTier struct {
	ID           string
	FieldID      string
	DayType      schedule.DayType
	StartTime    string // HH:MM:SS, matches the TIME column
	EndTime      string // HH:MM:SS
	PricePerHour int64
	CreatedAt    time.Time
}

// IntervalOn anchors the tier's time-of-day range onto a calendar date.
func (t *PriceTier) IntervalOn(date time.Time) (schedule.Interval, error) {
	return schedule.ClockIntervalOn(date, t.StartTime, t.EndTime)
}

// Filter defines parameters for listing price tiers.
type Filter struct {
	FieldID string
	DayType string
}
