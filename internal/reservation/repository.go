package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists reservations and their paired slot entries.
//
// The three *Atomic operations are the only write paths. Each runs as a
// single transaction so a reservation and its slot entry always change
// together: whichever transaction claims a contested slot row first wins,
// the other receives ErrSlotTaken.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListByDate(ctx context.Context, date string) ([]*Reservation, error)
	ListByRange(ctx context.Context, from, to string) ([]*Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*Reservation, error)

	// CreateAtomic claims the slot row and inserts the reservation in one
	// transaction. Returns ErrSlotTaken when the slot is already claimed or
	// the interval overlaps an existing reservation.
	CreateAtomic(ctx context.Context, r *Reservation) error

	// MoveAtomic relocates a reservation: claims the new slot row, releases
	// the old one and rewrites the time fields, all-or-nothing. When the
	// slot key is unchanged only the reservation fields are rewritten.
	MoveAtomic(ctx context.Context, r *Reservation, oldSlotID string) error

	// CancelAtomic deletes the reservation and its slot entry together.
	// Returns ErrNotFound if the reservation no longer exists.
	CancelAtomic(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const reservationColumns = `
	id,
	kind,
	user_id,
	guest_name,
	service_id,
	date,
	start_time,
	end_time,
	duration_minutes,
	card_color,
	expire_at,
	created_at,
	updated_at
`

func scanReservation(row pgx.Row) (*Reservation, error) {
	var r Reservation
	if err := row.Scan(
		&r.ID,
		&r.Kind,
		&r.UserID,
		&r.GuestName,
		&r.ServiceID,
		&r.Date,
		&r.StartTime,
		&r.EndTime,
		&r.DurationMinutes,
		&r.CardColor,
		&r.ExpireAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

// isSlotConflict recognizes the two constraint violations that mean
// "somebody else holds this time": the slots primary key (same start
// instant) and the reservations interval-exclusion constraint (overlapping
// range). Both are surfaced as ErrSlotTaken.
func isSlotConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.UniqueViolation || pgErr.Code == pgerrcode.ExclusionViolation
}

// isRetryable reports whether a commit failed in a way worth retrying.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
}

const maxTxAttempts = 3

// runTx executes fn inside a transaction, retrying a bounded number of
// times on serialization failures. Domain errors abort immediately.
func (r *pgxRepository) runTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		tx, err := r.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin transaction failed: %w", err)
		}

		if err := fn(tx); err != nil {
			_ = tx.Rollback(ctx)
			if isRetryable(err) {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			if isRetryable(err) {
				lastErr = err
				continue
			}
			return fmt.Errorf("commit failed: %w", err)
		}
		return nil
	}
	return fmt.Errorf("transaction retries exhausted: %w", lastErr)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM public.reservations WHERE id = $1`

	res, err := scanReservation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return res, nil
}

func (r *pgxRepository) ListByDate(ctx context.Context, date string) ([]*Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM public.reservations
		WHERE date = $1
		ORDER BY start_time ASC`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list reservations by date failed: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *pgxRepository) ListByRange(ctx context.Context, from, to string) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Select(
		"id", "kind", "user_id", "guest_name", "service_id",
		"date", "start_time", "end_time", "duration_minutes",
		"card_color", "expire_at", "created_at", "updated_at",
	).From("public.reservations")

	// ISO dates compare correctly as text.
	if from != "" {
		builder = builder.Where(squirrel.GtOrEq{"date": from})
	}
	if to != "" {
		builder = builder.Where(squirrel.LtOrEq{"date": to})
	}
	builder = builder.OrderBy("date ASC", "start_time ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM public.reservations
		WHERE user_id = $1
		ORDER BY date ASC, start_time ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user failed: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]*Reservation, error) {
	var reservations []*Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *pgxRepository) CreateAtomic(ctx context.Context, res *Reservation) error {
	slotID := SlotID(res.Date, res.StartTime)

	return r.runTx(ctx, func(tx pgx.Tx) error {
		// Read-check first so the common lost-race case reports cleanly
		// without tripping a constraint.
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM public.slots WHERE id = $1)`, slotID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check slot failed: %w", err)
		}
		if exists {
			return ErrSlotTaken
		}

		const insertReservation = `
			INSERT INTO public.reservations
				(kind, user_id, guest_name, service_id, date, start_time, end_time, duration_minutes, card_color, expire_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, created_at, updated_at
		`
		err := tx.QueryRow(ctx, insertReservation,
			res.Kind, res.UserID, res.GuestName, res.ServiceID,
			res.Date, res.StartTime, res.EndTime, res.DurationMinutes,
			res.CardColor, res.ExpireAt,
		).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
		if err != nil {
			if isSlotConflict(err) {
				// The interval-exclusion constraint caught an overlap that
				// the slot key alone cannot see (different starts, crossing
				// ranges).
				return ErrSlotTaken
			}
			return fmt.Errorf("insert reservation failed: %w", err)
		}

		const insertSlot = `
			INSERT INTO public.slots (id, date, start_time, reservation_id)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, insertSlot, slotID, res.Date, res.StartTime, res.ID); err != nil {
			if isSlotConflict(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert slot failed: %w", err)
		}

		return nil
	})
}

func (r *pgxRepository) MoveAtomic(ctx context.Context, res *Reservation, oldSlotID string) error {
	newSlotID := SlotID(res.Date, res.StartTime)

	return r.runTx(ctx, func(tx pgx.Tx) error {
		if oldSlotID != newSlotID {
			var exists bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM public.slots WHERE id = $1)`, newSlotID,
			).Scan(&exists); err != nil {
				return fmt.Errorf("check slot failed: %w", err)
			}
			if exists {
				return ErrSlotTaken
			}

			const insertSlot = `
				INSERT INTO public.slots (id, date, start_time, reservation_id)
				VALUES ($1, $2, $3, $4)
			`
			if _, err := tx.Exec(ctx, insertSlot, newSlotID, res.Date, res.StartTime, res.ID); err != nil {
				if isSlotConflict(err) {
					return ErrSlotTaken
				}
				return fmt.Errorf("insert slot failed: %w", err)
			}

			if _, err := tx.Exec(ctx, `DELETE FROM public.slots WHERE id = $1`, oldSlotID); err != nil {
				return fmt.Errorf("delete old slot failed: %w", err)
			}
		}

		const updateReservation = `
			UPDATE public.reservations
			SET date = $1, start_time = $2, end_time = $3, duration_minutes = $4, expire_at = $5, updated_at = now()
			WHERE id = $6
		`
		ct, err := tx.Exec(ctx, updateReservation,
			res.Date, res.StartTime, res.EndTime, res.DurationMinutes, res.ExpireAt, res.ID,
		)
		if err != nil {
			if isSlotConflict(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("update reservation failed: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func (r *pgxRepository) CancelAtomic(ctx context.Context, id string) error {
	return r.runTx(ctx, func(tx pgx.Tx) error {
		var date, startTime string
		err := tx.QueryRow(ctx,
			`SELECT date, start_time FROM public.reservations WHERE id = $1 FOR UPDATE`, id,
		).Scan(&date, &startTime)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("read reservation failed: %w", err)
		}

		// The slot row must go first: it references the reservation.
		if _, err := tx.Exec(ctx,
			`DELETE FROM public.slots WHERE id = $1`, SlotID(date, startTime),
		); err != nil {
			return fmt.Errorf("delete slot failed: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM public.reservations WHERE id = $1`, id,
		); err != nil {
			return fmt.Errorf("delete reservation failed: %w", err)
		}

		return nil
	})
}
