package http

import (
	"time"

	"github.com/glisicmilica/barberline-backend/internal/catalog"
)

// ServiceResponse is the shape of catalog data returned in API responses.
type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Description:     s.Description,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,oneof=30 60"`
	Description     string  `json:"description"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,oneof=30 60"`
	Description     *string  `json:"description"`
}
