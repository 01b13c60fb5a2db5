package http

import (
	"time"

	"github.com/openfield/field-booking-backend/internal/booking"
)

type BookingResponse struct {
	ID         string    `json:"id"`
	FieldID    string    `json:"field_id"`
	FieldName  string    `json:"field_name"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	VenueID    string    `json:"venue_id"`
	VenueName  string    `json:"venue_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		FieldID:    b.FieldID,
		FieldName:  b.FieldName,
		UserID:     b.UserID,
		UserName:   b.UserName,
		VenueID:    b.VenueID,
		VenueName:  b.VenueName,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

type CreateBookingBody struct {
	FieldID   string    `json:"field_id" binding:"required,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type AvailabilitySlotResponse struct {
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Price       int64     `json:"price"`
	IsPeakHour  bool      `json:"is_peak_hour"`
	IsAvailable bool      `json:"is_available"`
	Unpriced    bool      `json:"unpriced,omitempty"`
}

func NewAvailabilityResponse(slots []booking.AvailabilitySlot) []AvailabilitySlotResponse {
	out := make([]AvailabilitySlotResponse, len(slots))
	for i, s := range slots {
		out[i] = AvailabilitySlotResponse{
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Price:       s.Price,
			IsPeakHour:  s.IsPeakHour,
			IsAvailable: s.IsAvailable,
			Unpriced:    s.Unpriced,
		}
	}
	return out
}
