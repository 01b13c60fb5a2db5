package venue

import (
	"net/http"
	"time"

	"github.com/openfield/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "venue not found")
	ErrEmptyName        = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidGeo       = apperror.New(http.StatusBadRequest, "invalid coordinates")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Venue is a sports complex that owns one or more bookable fields.
type Venue struct {
	ID          string
	OwnerID     string
	OwnerName   string
	Name        string
	Address     string
	Description string
	Longitude   float64
	Latitude    float64
	CreatedAt   time.Time
}

// Filter defines parameters for listing venues.
type Filter struct {
	OwnerID  string
	Keyword  string // Search in Name or Address
	Page     int
	PageSize int
}
