package catalog

import (
	"net/http"
	"time"

	"github.com/glisicmilica/barberline-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "service not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "price must be greater than zero")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be 30 or 60 minutes")
)

// AllowedDurations are the service lengths offered by the shop. They are
// multiples of the booking slot step so every service starts on the grid.
var AllowedDurations = []int{30, 60}

// Service represents one offering on the price list (e.g., haircut, beard trim).
type Service struct {
	ID              string // UUID
	Name            string
	Price           float64
	DurationMinutes int
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DurationAllowed reports whether the duration is one of the offered lengths.
func DurationAllowed(minutes int) bool {
	for _, d := range AllowedDurations {
		if minutes == d {
			return true
		}
	}
	return false
}
