package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/settings/working-hours")

	// Reading the schedule is public: the booking page needs it before login.
	group.GET("", h.Get)

	group.PUT("", authMiddleware, adminMiddleware, h.Update)
}
