package http

import (
	"time"

	"github.com/glisicmilica/barberline-backend/internal/reservation"
)

// ReservationResponse is the shape of reservation data returned in API responses.
type ReservationResponse struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	UserID          *string   `json:"user_id,omitempty"`
	GuestName       *string   `json:"guest_name,omitempty"`
	ServiceID       *string   `json:"service_id,omitempty"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CardColor       *string   `json:"card_color,omitempty"`
	ExpireAt        time.Time `json:"expire_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		Kind:            string(r.Kind),
		UserID:          r.UserID,
		GuestName:       r.GuestName,
		ServiceID:       r.ServiceID,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		CardColor:       r.CardColor,
		ExpireAt:        r.ExpireAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FreeSlotsRequest defines query parameters for the availability listing.
type FreeSlotsRequest struct {
	Date string `form:"date" binding:"required"`
}

// FreeSlotsResponse lists the bookable start times for a date.
type FreeSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// CreateBookingRequest is the payload for a customer's own booking.
type CreateBookingRequest struct {
	ServiceID string `json:"service_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

// AdminCreateRequest is the admin calendar payload. It can book on behalf
// of a user, enter a walk-in guest, or block out a break.
type AdminCreateRequest struct {
	Kind            string `json:"kind" binding:"required,oneof=user guest break"`
	UserID          string `json:"user_id" binding:"omitempty,uuid"`
	GuestName       string `json:"guest_name"`
	ServiceID       string `json:"service_id" binding:"omitempty,uuid"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,oneof=30 60"`
	CardColor       string `json:"card_color"`
}

// MoveRequest relocates a reservation to a new date/time.
type MoveRequest struct {
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,oneof=30 60"`
}

// ListReservationsRequest defines query parameters for the calendar listing.
type ListReservationsRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}
