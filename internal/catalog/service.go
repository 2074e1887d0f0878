package catalog

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name            string
	Price           float64
	DurationMinutes int
	Description     string
}

type UpdateRequest struct {
	Name            *string
	Price           *float64
	DurationMinutes *int
	Description     *string
}

// Catalog defines business logic around the shop's price list.
type Catalog interface {
	Create(ctx context.Context, req CreateRequest) (*Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Service, error)
	Delete(ctx context.Context, id string) error
}

type catalog struct {
	repo Repository
}

// NewCatalog creates a new Catalog service.
func NewCatalog(repo Repository) Catalog {
	return &catalog{repo: repo}
}

func (s *catalog) Create(ctx context.Context, req CreateRequest) (*Service, error) {
	if err := validate(req.Name, req.Price, req.DurationMinutes); err != nil {
		return nil, err
	}

	svc := &Service{
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Description:     strings.TrimSpace(req.Description),
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalog) GetByID(ctx context.Context, id string) (*Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *catalog) List(ctx context.Context) ([]*Service, error) {
	return s.repo.List(ctx)
}

func (s *catalog) Update(ctx context.Context, id string, req UpdateRequest) (*Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Description != nil {
		svc.Description = strings.TrimSpace(*req.Description)
	}

	if err := validate(svc.Name, svc.Price, svc.DurationMinutes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalog) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validate(name string, price float64, duration int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if !DurationAllowed(duration) {
		return ErrInvalidDuration
	}
	return nil
}
