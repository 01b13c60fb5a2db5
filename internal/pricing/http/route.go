package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// Tier listing is public: clients need prices to render the grid legend.
	g.GET("/fields/:id/price-tiers", h.ListByField)

	group := g.Group("/price-tiers")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
