package booking

import (
	"net/http"
	"time"

	"github.com/openfield/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound                = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict            = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange        = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrStartTimePast           = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrInvalidStatus           = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidStatusTransition = apperror.New(http.StatusConflict, "booking status does not allow this transition")
	ErrFieldNotFound           = apperror.New(http.StatusNotFound, "field not found")
	ErrPermissionDenied        = apperror.New(http.StatusForbidden, "permission denied")
	ErrNotMinuteAligned        = apperror.New(http.StatusBadRequest, "booking times must be aligned to whole minutes")
	ErrOutsideOperatingHours   = apperror.New(http.StatusUnprocessableEntity, "booking is outside the field's operating hours")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsActive reports whether a booking in this status blocks other bookings.
// Only pending and confirmed bookings count toward conflict detection.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ActiveStatuses is the set of statuses counted by overlap queries.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

// Booking is a reservation of one field for one time range.
// TotalPrice is in integer minor currency units, fixed at creation time.
type Booking struct {
	ID         string
	FieldID    string
	FieldName  string
	UserID     string
	UserName   string
	VenueID    string
	VenueName  string
	StartTime  time.Time
	EndTime    time.Time
	Status     Status
	TotalPrice int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID    string
	FieldID   string
	VenueID   string
	Status    string
	StartTime *time.Time // Filter bookings ending after this time
	EndTime   *time.Time // Filter bookings starting before this time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
