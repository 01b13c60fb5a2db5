package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openfield/field-booking-backend/internal/auth"
	"github.com/openfield/field-booking-backend/internal/pkg/response"
	"github.com/openfield/field-booking-backend/internal/pricing"
	"github.com/openfield/field-booking-backend/internal/user"
)

type Handler struct {
	service     pricing.Service
	userService user.Service
}

func NewHandler(service pricing.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

func (h *Handler) checkIsSysAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsSystemAdmin
}

// ListByField handles GET /v1/fields/:id/price-tiers
func (h *Handler) ListByField(c *gin.Context) {
	fieldID := c.Param("id")
	if _, err := uuid.Parse(fieldID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	tiers, err := h.service.ListByField(c.Request.Context(), fieldID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PriceTierResponse, len(tiers))
	for i, t := range tiers {
		items[i] = NewPriceTierResponse(t)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePriceTierBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	t, err := h.service.Create(c.Request.Context(), pricing.CreateRequest{
		FieldID:      body.FieldID,
		DayType:      body.DayType,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		PricePerHour: body.PricePerHour,
	}, userID, isSysAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPriceTierResponse(t))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdatePriceTierBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	t, err := h.service.Update(c.Request.Context(), id, pricing.UpdateRequest{
		DayType:      body.DayType,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		PricePerHour: body.PricePerHour,
	}, userID, isSysAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPriceTierResponse(t))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	userID := auth.GetUserID(c)
	isSysAdmin := h.checkIsSysAdmin(c, userID)

	if err := h.service.Delete(c.Request.Context(), id, userID, isSysAdmin); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
