package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing catalog services from storage.
type Repository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *Service) error {
	const query = `
		INSERT INTO public.services (name, price, duration_minutes, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query, s.Name, s.Price, s.DurationMinutes, s.Description).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return fmt.Errorf("create service failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	const query = `
		SELECT id, name, price, duration_minutes, description, created_at, updated_at
		FROM public.services
		WHERE id = $1
	`

	var s Service
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Price, &s.DurationMinutes, &s.Description, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Service, error) {
	const query = `
		SELECT id, name, price, duration_minutes, description, created_at, updated_at
		FROM public.services
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services failed: %w", err)
	}
	defer rows.Close()

	var services []*Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Price, &s.DurationMinutes, &s.Description, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service failed: %w", err)
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, s *Service) error {
	const query = `
		UPDATE public.services
		SET name = $1, price = $2, duration_minutes = $3, description = $4, updated_at = now()
		WHERE id = $5
	`

	ct, err := r.pool.Exec(ctx, query, s.Name, s.Price, s.DurationMinutes, s.Description, s.ID)
	if err != nil {
		return fmt.Errorf("update service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.services WHERE id = $1`

	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
