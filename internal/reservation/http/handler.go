package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/glisicmilica/barberline-backend/internal/auth"
	"github.com/glisicmilica/barberline-backend/internal/pkg/response"
	"github.com/glisicmilica/barberline-backend/internal/reservation"
	"github.com/glisicmilica/barberline-backend/internal/user"
)

type Handler struct {
	service     reservation.Service
	userService user.Service
}

func NewHandler(service reservation.Service, userService user.Service) *Handler {
	return &Handler{service: service, userService: userService}
}

// FreeSlots returns the bookable start times for a date. The result is a
// hint from a snapshot read; the booking request is re-validated inside
// the transaction.
func (h *Handler) FreeSlots(c *gin.Context) {
	var req FreeSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.service.FreeSlots(c.Request.Context(), req.Date, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, FreeSlotsResponse{Date: req.Date, Slots: slots})
}

// Create books a slot for the authenticated customer.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	res, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		Kind:      reservation.KindUser,
		UserID:    userID,
		ServiceID: body.ServiceID,
		Date:      body.Date,
		StartTime: body.StartTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

// AdminCreate enters a reservation from the admin calendar.
func (h *Handler) AdminCreate(c *gin.Context) {
	var body AdminCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		Kind:            reservation.Kind(body.Kind),
		UserID:          body.UserID,
		GuestName:       body.GuestName,
		ServiceID:       body.ServiceID,
		Date:            body.Date,
		StartTime:       body.StartTime,
		DurationMinutes: body.DurationMinutes,
		CardColor:       body.CardColor,
		CreatedByAdmin:  true,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

// List returns reservations in a date range for the admin calendar.
func (h *Handler) List(c *gin.Context) {
	var req ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	reservations, err := h.service.ListByRange(c.Request.Context(), req.From, req.To)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, NewReservationResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Mine returns the authenticated customer's own reservations.
func (h *Handler) Mine(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	reservations, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, NewReservationResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Move relocates a reservation to a new slot (admin calendar drag).
func (h *Handler) Move(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body MoveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	res, err := h.service.Move(c.Request.Context(), id, reservation.MoveRequest{
		Date:            body.Date,
		StartTime:       body.StartTime,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

// Delete cancels a reservation. Customers may cancel their own; admins any.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	requester, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id, userID, requester.IsAdmin); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
