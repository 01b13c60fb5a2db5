package http

import (
	"time"

	"github.com/openfield/field-booking-backend/internal/fieldphoto"
)

type PhotoResponse struct {
	ID           string    `json:"id"`
	FieldID      string    `json:"field_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	Caption      *string   `json:"caption,omitempty"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type UploadResponse struct {
	Message string        `json:"message"`
	Photo   PhotoResponse `json:"photo"`
}

type ListResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

func NewPhotoResponse(p *fieldphoto.Photo) PhotoResponse {
	var thumbURL *string
	if p.ThumbnailPath != nil {
		t := fieldphoto.ThumbnailURL(p.ID)
		thumbURL = &t
	}

	return PhotoResponse{
		ID:           p.ID,
		FieldID:      p.FieldID,
		Filename:     p.Filename,
		ContentType:  p.ContentType,
		Size:         p.Size,
		Caption:      p.Caption,
		URL:          fieldphoto.PhotoURL(p.ID),
		ThumbnailURL: thumbURL,
		CreatedAt:    p.CreatedAt,
	}
}
