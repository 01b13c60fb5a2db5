package http

import (
	"time"

	"github.com/openfield/field-booking-backend/internal/pricing"
)

type PriceTierResponse struct {
	ID           string    `json:"id"`
	FieldID      string    `json:"field_id"`
	DayType      string    `json:"day_type"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	PricePerHour int64     `json:"price_per_hour"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPriceTierResponse(t *pricing.PriceTier) PriceTierResponse {
	return PriceTierResponse{
		ID:           t.ID,
		FieldID:      t.FieldID,
		DayType:      string(t.DayType),
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		PricePerHour: t.PricePerHour,
		CreatedAt:    t.CreatedAt,
	}
}

type CreatePriceTierBody struct {
	FieldID      string `json:"field_id" binding:"required,uuid"`
	DayType      string `json:"day_type" binding:"required,oneof=weekday weekend"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	PricePerHour int64  `json:"price_per_hour" binding:"min=0"`
}

type UpdatePriceTierBody struct {
	DayType      *string `json:"day_type" binding:"omitempty,oneof=weekday weekend"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	PricePerHour *int64  `json:"price_per_hour" binding:"omitempty,min=0"`
}
