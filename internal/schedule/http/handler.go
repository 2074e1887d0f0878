package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glisicmilica/barberline-backend/internal/pkg/response"
	"github.com/glisicmilica/barberline-backend/internal/schedule"
)

type Handler struct {
	service schedule.Service
}

func NewHandler(service schedule.Service) *Handler {
	return &Handler{service: service}
}

// Get returns the normalized working-hours configuration.
func (h *Handler) Get(c *gin.Context) {
	hours, err := h.service.WorkingHours(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewWorkingHoursPayload(hours))
}

// Update replaces the working-hours configuration.
func (h *Handler) Update(c *gin.Context) {
	var body WorkingHoursPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	hours, err := h.service.UpdateWorkingHours(c.Request.Context(), body.ToDomain())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewWorkingHoursPayload(hours))
}
