package schedule

import "context"

// Service exposes the working-hours configuration to the rest of the app.
type Service interface {
	// WorkingHours returns the normalized configuration, falling back to the
	// defaults when nothing has been stored yet.
	WorkingHours(ctx context.Context) (WorkingHours, error)
	UpdateWorkingHours(ctx context.Context, hours WorkingHours) (WorkingHours, error)
}

type service struct {
	repo Repository
}

// NewService creates a new schedule Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) WorkingHours(ctx context.Context) (WorkingHours, error) {
	stored, err := s.repo.GetWorkingHours(ctx)
	if err != nil {
		return WorkingHours{}, err
	}
	return Normalize(stored), nil
}

func (s *service) UpdateWorkingHours(ctx context.Context, hours WorkingHours) (WorkingHours, error) {
	normalized := Normalize(&hours)
	if err := normalized.Validate(); err != nil {
		return WorkingHours{}, err
	}
	if err := s.repo.SaveWorkingHours(ctx, normalized); err != nil {
		return WorkingHours{}, err
	}
	return normalized, nil
}
