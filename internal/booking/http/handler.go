package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openfield/field-booking-backend/internal/auth"
	"github.com/openfield/field-booking-backend/internal/booking"
	"github.com/openfield/field-booking-backend/internal/pkg/response"
	"github.com/openfield/field-booking-backend/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
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

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	fieldID := c.Query("field_id")
	venueID := c.Query("venue_id")
	status := c.Query("status")
	queryUserID := c.Query("user_id")

	var startTime, endTime *time.Time
	if v := c.Query("start_time_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			startTime = &t
		}
	}
	if v := c.Query("start_time_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			endTime = &t
		}
	}

	currentUserID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, currentUserID)

	filterUserID := currentUserID
	// Admins can see all bookings or filter by a specific user.
	if isSysAdmin {
		filterUserID = queryUserID
	}

	filter := booking.Filter{
		UserID:    filterUserID,
		FieldID:   fieldID,
		VenueID:   venueID,
		Status:    status,
		StartTime: startTime,
		EndTime:   endTime,
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	req := booking.CreateRequest{
		UserID:    userID,
		FieldID:   body.FieldID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// transitionHandler wraps the confirm/cancel/complete endpoints, which differ
// only in the service call.
func (h *Handler) transitionHandler(c *gin.Context, do func(actorID string, isSysAdmin bool) (*booking.Booking, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	b, err := do(userID, isSysAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Confirm(c *gin.Context) {
	h.transitionHandler(c, func(actorID string, isSysAdmin bool) (*booking.Booking, error) {
		return h.service.Confirm(c.Request.Context(), c.Param("id"), actorID, isSysAdmin)
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transitionHandler(c, func(actorID string, isSysAdmin bool) (*booking.Booking, error) {
		return h.service.Cancel(c.Request.Context(), c.Param("id"), actorID, isSysAdmin)
	})
}

func (h *Handler) Complete(c *gin.Context) {
	h.transitionHandler(c, func(actorID string, isSysAdmin bool) (*booking.Booking, error) {
		return h.service.Complete(c.Request.Context(), c.Param("id"), actorID, isSysAdmin)
	})
}

// Availability handles GET /v1/fields/:id/availability?date=YYYY-MM-DD&granularity=60
func (h *Handler) Availability(c *gin.Context) {
	fieldID := c.Param("id")
	if _, err := uuid.Parse(fieldID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	granularity := time.Hour
	if v := c.Query("granularity"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes < 15 || minutes > 24*60 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "granularity must be minutes between 15 and 1440"})
			return
		}
		granularity = time.Duration(minutes) * time.Minute
	}

	slots, err := h.service.Availability(c.Request.Context(), fieldID, date, granularity)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"field_id": fieldID,
		"date":     dateStr,
		"slots":    NewAvailabilityResponse(slots),
	})
}
