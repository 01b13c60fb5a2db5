package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfield/field-booking-backend/internal/auth"
	"github.com/openfield/field-booking-backend/internal/fieldphoto"
	"github.com/openfield/field-booking-backend/internal/pkg/response"
	"github.com/openfield/field-booking-backend/internal/user"
)

type Handler struct {
	photoService fieldphoto.Service
	userService  user.Service
}

func NewHandler(photoService fieldphoto.Service, userService user.Service) *Handler {
	return &Handler{
		photoService: photoService,
		userService:  userService,
	}
}

// checkIsSysAdmin helper checks if the current user is a system admin
func (h *Handler) checkIsSysAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsSystemAdmin
}

// Upload attaches a photo to a field. Venue owner or system admin only.
func (h *Handler) Upload(c *gin.Context) {
	fieldID := c.Param("id")
	if fieldID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field ID is required"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}

	userID := auth.GetUserID(c)

	p, err := h.photoService.Upload(c.Request.Context(), fieldphoto.UploadInput{
		FieldID:    fieldID,
		ActorID:    userID,
		IsSysAdmin: h.checkIsSysAdmin(c, userID),
		Caption:    c.PostForm("caption"),
		FileHeader: fileHeader,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{
		Message: "photo uploaded successfully",
		Photo:   NewPhotoResponse(p),
	})
}

// ListByField returns the photos attached to a field.
func (h *Handler) ListByField(c *gin.Context) {
	fieldID := c.Param("id")
	if fieldID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field ID is required"})
		return
	}

	photos, err := h.photoService.ListByField(c.Request.Context(), fieldID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}

	c.JSON(http.StatusOK, ListResponse{Photos: items})
}

// Delete removes a photo. Venue owner or system admin only.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo ID is required"})
		return
	}

	userID := auth.GetUserID(c)
	if err := h.photoService.Delete(c.Request.Context(), id, userID, h.checkIsSysAdmin(c, userID)); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "photo deleted successfully"})
}

// ServePhoto streams the photo content by ID.
func (h *Handler) ServePhoto(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo ID is required"})
		return
	}

	stream, p, err := h.photoService.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", p.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started; nothing useful to send.
		return
	}
}

// ServeThumbnail streams the thumbnail image by photo ID.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo ID is required"})
		return
	}

	stream, p, err := h.photoService.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always JPEG
	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+p.Filename+"_thumb.jpg\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		return
	}
}
