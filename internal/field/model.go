package field

import (
	"net/http"
	"time"

	"github.com/openfield/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound               = apperror.New(http.StatusNotFound, "field not found")
	ErrEmptyName              = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidVenue           = apperror.New(http.StatusBadRequest, "invalid venue_id")
	ErrInvalidSportType       = apperror.New(http.StatusBadRequest, "invalid sport type")
	ErrInvalidOperatingWindow = apperror.New(http.StatusBadRequest, "open time must be before close time")
)

// ValidSportTypes lists the sports a field may be configured for.
var ValidSportTypes = []string{
	"football",
	"futsal",
	"badminton",
	"basketball",
	"tennis",
	"volleyball",
}

// Field is a bookable unit inside a venue (e.g. Pitch 1, Court B).
// OpenTime/CloseTime are HH:MM:SS strings matching the TIME columns and
// bound the daily availability grid.
type Field struct {
	ID        string
	VenueID   string
	VenueName string
	Name      string
	SportType string
	OpenTime  string
	CloseTime string
	CreatedAt time.Time
}

// Filter defines parameters for listing fields.
type Filter struct {
	VenueID   string
	SportType string
	Page      int
	PageSize  int
}
