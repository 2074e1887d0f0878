package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const workingHoursKey = "working_hours"

// Repository stores the working-hours configuration document.
type Repository interface {
	// GetWorkingHours returns the stored configuration, or nil if none was
	// ever saved (callers normalize against the defaults).
	GetWorkingHours(ctx context.Context) (*WorkingHours, error)
	SaveWorkingHours(ctx context.Context, hours WorkingHours) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetWorkingHours(ctx context.Context) (*WorkingHours, error) {
	const query = `SELECT value FROM public.settings WHERE key = $1`

	var raw []byte
	if err := r.pool.QueryRow(ctx, query, workingHoursKey).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get working hours failed: %w", err)
	}

	var hours WorkingHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, fmt.Errorf("decode working hours failed: %w", err)
	}
	return &hours, nil
}

func (r *pgxRepository) SaveWorkingHours(ctx context.Context, hours WorkingHours) error {
	raw, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("encode working hours failed: %w", err)
	}

	const query = `
		INSERT INTO public.settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := r.pool.Exec(ctx, query, workingHoursKey, raw); err != nil {
		return fmt.Errorf("save working hours failed: %w", err)
	}
	return nil
}
