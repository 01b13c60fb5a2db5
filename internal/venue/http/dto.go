package http

import (
	"time"

	"github.com/openfield/field-booking-backend/internal/venue"
)

type VenueResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	return VenueResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		OwnerName:   v.OwnerName,
		Name:        v.Name,
		Address:     v.Address,
		Description: v.Description,
		Longitude:   v.Longitude,
		Latitude:    v.Latitude,
		CreatedAt:   v.CreatedAt,
	}
}

type CreateVenueBody struct {
	Name        string  `json:"name" binding:"required"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
}

type UpdateVenueBody struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	Description *string  `json:"description"`
	Longitude   *float64 `json:"longitude"`
	Latitude    *float64 `json:"latitude"`
}
