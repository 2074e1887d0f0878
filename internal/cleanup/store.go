package cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glisicmilica/barberline-backend/internal/reservation"
)

type pgxStore struct {
	pool *pgxpool.Pool
}

// NewPgxStore creates a Store backed by pgxpool.
func NewPgxStore(pool *pgxpool.Pool) Store {
	return &pgxStore{pool: pool}
}

func (s *pgxStore) ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]ExpiredReservation, error) {
	query := `
		SELECT id, date, start_time
		FROM public.reservations
		WHERE expire_at <= $1
		ORDER BY expire_at ASC
	`
	args := []any{cutoff}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return s.list(ctx, query, args)
}

func (s *pgxStore) ListAll(ctx context.Context, limit int) ([]ExpiredReservation, error) {
	query := `
		SELECT id, date, start_time
		FROM public.reservations
		ORDER BY expire_at ASC
	`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	return s.list(ctx, query, args)
}

func (s *pgxStore) list(ctx context.Context, query string, args []any) ([]ExpiredReservation, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations failed: %w", err)
	}
	defer rows.Close()

	var expired []ExpiredReservation
	for rows.Next() {
		var r ExpiredReservation
		if err := rows.Scan(&r.ID, &r.Date, &r.StartTime); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		expired = append(expired, r)
	}
	return expired, rows.Err()
}

func (s *pgxStore) DeleteBatch(ctx context.Context, batch []ExpiredReservation) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction failed: %w", err)
	}
	defer tx.Rollback(ctx)

	ids := make([]string, 0, len(batch))
	slotIDs := make([]string, 0, len(batch))
	for _, r := range batch {
		ids = append(ids, r.ID)
		slotIDs = append(slotIDs, reservation.SlotID(r.Date, r.StartTime))
	}

	// Slot rows reference reservations, so they go first.
	if _, err := tx.Exec(ctx,
		`DELETE FROM public.slots WHERE id = ANY($1)`, slotIDs,
	); err != nil {
		return fmt.Errorf("delete slots failed: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM public.reservations WHERE id = ANY($1)`, ids,
	); err != nil {
		return fmt.Errorf("delete reservations failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}
