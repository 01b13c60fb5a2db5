package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers field photo routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// Public Routes
	g.GET("/fields/:id/photos", h.ListByField)
	g.GET("/field-photos/:id", h.ServePhoto)
	g.GET("/field-photos/:id/thumbnail", h.ServeThumbnail)

	// Authenticated Routes
	g.POST("/fields/:id/photos", authMiddleware, h.Upload)
	g.DELETE("/field-photos/:id", authMiddleware, h.Delete)
}
