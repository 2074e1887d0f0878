package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all reservation-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/reservations")
	{
		// Public Routes
		group.GET("/free-slots", h.FreeSlots)

		// Authenticated Routes
		group.POST("", authMiddleware, h.Create)
		group.GET("/my", authMiddleware, h.Mine)
		group.DELETE("/:id", authMiddleware, h.Delete)

		// Admin Routes
		group.GET("", authMiddleware, adminMiddleware, h.List)
		group.POST("/admin", authMiddleware, adminMiddleware, h.AdminCreate)
		group.PATCH("/:id/move", authMiddleware, adminMiddleware, h.Move)
	}
}
