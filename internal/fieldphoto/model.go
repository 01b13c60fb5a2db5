package fieldphoto

import (
	"net/http"
	"time"

	"github.com/openfield/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "field photo not found")
	ErrUnsupportedType = apperror.New(http.StatusBadRequest, "only image uploads are supported")
	ErrFileTooLarge    = apperror.New(http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
	ErrNoThumbnail     = apperror.New(http.StatusNotFound, "thumbnail not available for this photo")
)

// Photo represents an image attached to a field.
type Photo struct {
	ID            string    `json:"id"`
	FieldID       string    `json:"field_id"`
	UploaderID    string    `json:"uploader_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	Caption       *string   `json:"caption,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// PhotoURL returns the public URL for accessing a photo by its ID.
func PhotoURL(id string) string {
	return "/field-photos/" + id
}

// ThumbnailURL returns the public URL for accessing a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/field-photos/" + id + "/thumbnail"
}
