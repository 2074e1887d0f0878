package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/glisicmilica/barberline-backend/internal/catalog"
	"github.com/glisicmilica/barberline-backend/internal/schedule"
	"github.com/glisicmilica/barberline-backend/internal/user"
)

// breakCardColor is forced on break entries so they render uniformly.
const breakCardColor = "#6b7280"

// CreateRequest carries everything needed to book an interval.
//
// Public bookings set Kind = user with the caller's own ID and a service;
// the admin calendar may additionally create guest and break entries with
// an explicit duration.
type CreateRequest struct {
	Kind            Kind
	UserID          string
	GuestName       string
	ServiceID       string
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	DurationMinutes int    // optional when ServiceID is set
	CardColor       string
	CreatedByAdmin  bool
}

// MoveRequest relocates an existing reservation.
type MoveRequest struct {
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	DurationMinutes int    // 0 keeps the current duration
}

// Service implements the reservation protocol: availability reads plus the
// three atomic mutations (create, move, cancel). All conflict decisions
// ultimately happen inside the repository transaction; the checks here
// exist to fail fast with precise domain errors.
type Service interface {
	FreeSlots(ctx context.Context, date string, now time.Time) ([]string, error)
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	Move(ctx context.Context, id string, req MoveRequest) (*Reservation, error)
	Cancel(ctx context.Context, id, requesterID string, isAdmin bool) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListByRange(ctx context.Context, from, to string) ([]*Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*Reservation, error)
}

type service struct {
	repo        Repository
	schedule    schedule.Service
	catalog     catalog.Catalog
	userService user.Service
}

// NewService creates a new reservation Service.
func NewService(repo Repository, scheduleService schedule.Service, cat catalog.Catalog, userService user.Service) Service {
	return &service{
		repo:        repo,
		schedule:    scheduleService,
		catalog:     cat,
		userService: userService,
	}
}

func (s *service) FreeSlots(ctx context.Context, date string, now time.Time) ([]string, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	hours, err := s.schedule.WorkingHours(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return schedule.FreeSlots(day, occupiedIntervals(existing, ""), hours, SlotStepMinutes, now), nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateTime(req.StartTime); err != nil {
		return nil, err
	}
	if !req.Kind.Valid() {
		return nil, ErrInvalidKind
	}

	res := &Reservation{
		Kind:      req.Kind,
		Date:      req.Date,
		StartTime: req.StartTime,
	}

	switch req.Kind {
	case KindUser:
		if req.UserID == "" {
			return nil, ErrUserRequired
		}
		u, err := s.userService.GetByID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		if !req.CreatedByAdmin && !u.Verified {
			return nil, ErrNotVerified
		}
		res.UserID = &u.ID
	case KindGuest:
		name := strings.TrimSpace(req.GuestName)
		if name == "" {
			return nil, ErrGuestNameRequired
		}
		res.GuestName = &name
	case KindBreak:
		// Breaks carry no subject and no service.
		req.ServiceID = ""
	}

	duration, serviceID, err := s.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}
	res.ServiceID = serviceID
	res.DurationMinutes = duration
	res.EndTime = EndTimeFor(req.StartTime, duration)
	res.ExpireAt = ExpireAtFor(day)

	if req.Kind == KindBreak {
		color := breakCardColor
		res.CardColor = &color
	} else if req.CardColor != "" {
		color := req.CardColor
		res.CardColor = &color
	}

	if err := s.checkPolicy(ctx, day, req.StartTime, duration, ""); err != nil {
		return nil, err
	}

	if err := s.repo.CreateAtomic(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Move(ctx context.Context, id string, req MoveRequest) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateTime(req.StartTime); err != nil {
		return nil, err
	}

	duration := res.DurationMinutes
	if req.DurationMinutes > 0 {
		if !catalog.DurationAllowed(req.DurationMinutes) {
			return nil, ErrInvalidDuration
		}
		duration = req.DurationMinutes
	}

	// Policy violations are rejected before the transaction opens; only a
	// lost slot race is decided inside it.
	if err := s.checkPolicy(ctx, day, req.StartTime, duration, res.ID); err != nil {
		return nil, err
	}

	oldSlotID := SlotID(res.Date, res.StartTime)

	res.Date = req.Date
	res.StartTime = req.StartTime
	res.DurationMinutes = duration
	res.EndTime = EndTimeFor(req.StartTime, duration)
	res.ExpireAt = ExpireAtFor(day)

	if err := s.repo.MoveAtomic(ctx, res, oldSlotID); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, id, requesterID string, isAdmin bool) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && !res.IsOwnedBy(requesterID) {
		return ErrPermissionDenied
	}

	return s.repo.CancelAtomic(ctx, res.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByRange(ctx context.Context, from, to string) ([]*Reservation, error) {
	return s.repo.ListByRange(ctx, from, to)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Reservation, error) {
	return s.repo.ListByUser(ctx, userID)
}

// resolveDuration determines the interval length: explicit durations must
// be on the offered grid, otherwise the selected service dictates it.
func (s *service) resolveDuration(ctx context.Context, req CreateRequest) (int, *string, error) {
	var serviceID *string
	var serviceDuration int

	if req.ServiceID != "" {
		svc, err := s.catalog.GetByID(ctx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return 0, nil, ErrServiceNotFound
			}
			return 0, nil, err
		}
		serviceID = &svc.ID
		serviceDuration = svc.DurationMinutes
	}

	if req.DurationMinutes > 0 {
		if !catalog.DurationAllowed(req.DurationMinutes) {
			return 0, nil, ErrInvalidDuration
		}
		return req.DurationMinutes, serviceID, nil
	}

	if serviceID != nil {
		return serviceDuration, serviceID, nil
	}

	if req.Kind == KindUser && !req.CreatedByAdmin {
		return 0, nil, ErrServiceRequired
	}
	return 0, nil, ErrInvalidDuration
}

// checkPolicy runs the pre-transaction validations: vacation window,
// working hours, and the strict interval-overlap test against a fresh
// read of the day's reservations.
func (s *service) checkPolicy(ctx context.Context, day time.Time, startTime string, durationMinutes int, excludeID string) error {
	hours, err := s.schedule.WorkingHours(ctx)
	if err != nil {
		return err
	}

	if hours.OnVacation(day) {
		return ErrOnVacation
	}

	dayConfig := hours.DayConfig(day)
	if !schedule.WithinWorkingHours(dayConfig, startTime, durationMinutes) {
		return ErrOutsideHours
	}

	existing, err := s.repo.ListByDate(ctx, day.Format(schedule.DateFormat))
	if err != nil {
		return err
	}

	start := schedule.TimeToMinutes(startTime)
	if !schedule.Fits(start, durationMinutes, occupiedIntervals(existing, excludeID), dayConfig) {
		return ErrSlotTaken
	}
	return nil
}

func occupiedIntervals(reservations []*Reservation, excludeID string) []schedule.Interval {
	intervals := make([]schedule.Interval, 0, len(reservations))
	for _, r := range reservations {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		intervals = append(intervals, schedule.Interval{
			Start: schedule.TimeToMinutes(r.StartTime),
			End:   schedule.TimeToMinutes(r.EndTime),
		})
	}
	return intervals
}

func parseDate(value string) (time.Time, error) {
	day, err := time.ParseInLocation(schedule.DateFormat, value, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

func validateTime(value string) error {
	if _, err := time.Parse(schedule.TimeFormat, value); err != nil {
		return ErrInvalidTime
	}
	return nil
}
