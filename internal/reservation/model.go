package reservation

import (
	"net/http"
	"time"

	"github.com/glisicmilica/barberline-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "reservation not found")
	ErrSlotTaken         = apperror.New(http.StatusConflict, "time slot already taken")
	ErrOnVacation        = apperror.New(http.StatusUnprocessableEntity, "the shop is on vacation for the selected date")
	ErrOutsideHours      = apperror.New(http.StatusUnprocessableEntity, "selected time is outside working hours")
	ErrInvalidDate       = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidTime       = apperror.New(http.StatusBadRequest, "invalid time, expected HH:MM")
	ErrInvalidDuration   = apperror.New(http.StatusBadRequest, "duration must be 30 or 60 minutes")
	ErrInvalidKind       = apperror.New(http.StatusBadRequest, "kind must be user, guest or break")
	ErrUserRequired      = apperror.New(http.StatusBadRequest, "user is required for a user reservation")
	ErrGuestNameRequired = apperror.New(http.StatusBadRequest, "guest name is required for a guest reservation")
	ErrServiceRequired   = apperror.New(http.StatusBadRequest, "service is required")
	ErrServiceNotFound   = apperror.New(http.StatusUnprocessableEntity, "selected service does not exist")
	ErrUserNotFound      = apperror.New(http.StatusUnprocessableEntity, "selected user does not exist")
	ErrNotVerified       = apperror.New(http.StatusForbidden, "account is not verified yet")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
)

// SlotStepMinutes is the booking grid granularity.
const SlotStepMinutes = 30

// RetentionDays is how long a reservation is kept after its date before
// the cleanup job may remove it.
const RetentionDays = 90

// Kind tags the three reservation payload shapes: a registered user's
// booking, an admin-entered guest booking, and a blocked-out break.
type Kind string

const (
	KindUser  Kind = "user"
	KindGuest Kind = "guest"
	KindBreak Kind = "break"
)

// Valid reports whether the kind is one of the three known tags.
func (k Kind) Valid() bool {
	return k == KindUser || k == KindGuest || k == KindBreak
}

// Reservation represents one booked interval on the calendar.
//
// EndTime is derived from StartTime and DurationMinutes when the
// reservation is created or moved, never edited independently. For a
// fixed date, no two reservations' [StartTime, EndTime) intervals may
// overlap; the repository's atomic operations enforce this.
type Reservation struct {
	ID              string // UUID
	Kind            Kind
	UserID          *string // set when Kind == user
	GuestName       *string // set when Kind == guest
	ServiceID       *string // nil for breaks
	Date            string  // YYYY-MM-DD
	StartTime       string  // HH:MM
	EndTime         string  // HH:MM, derived
	DurationMinutes int
	CardColor       *string // display only
	ExpireAt        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwnedBy reports whether the reservation belongs to the given user.
func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.UserID != nil && *r.UserID == userID
}
