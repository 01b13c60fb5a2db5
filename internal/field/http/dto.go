package http

import (
	"time"

	"github.com/openfield/field-booking-backend/internal/field"
)

type FieldResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	VenueName string    `json:"venue_name"`
	Name      string    `json:"name"`
	SportType string    `json:"sport_type"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFieldResponse(f *field.Field) FieldResponse {
	return FieldResponse{
		ID:        f.ID,
		VenueID:   f.VenueID,
		VenueName: f.VenueName,
		Name:      f.Name,
		SportType: f.SportType,
		OpenTime:  f.OpenTime,
		CloseTime: f.CloseTime,
		CreatedAt: f.CreatedAt,
	}
}

type CreateFieldBody struct {
	VenueID   string `json:"venue_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required"`
	SportType string `json:"sport_type" binding:"required"`
	OpenTime  string `json:"open_time" binding:"required"`
	CloseTime string `json:"close_time" binding:"required"`
}

type UpdateFieldBody struct {
	Name      *string `json:"name"`
	SportType *string `json:"sport_type"`
	OpenTime  *string `json:"open_time"`
	CloseTime *string `json:"close_time"`
}
