package cleanup

import (
	"context"
	"fmt"
	"log"
	"time"
)

// batchSize keeps individual delete transactions small enough that the
// job can be interrupted and rerun without losing much progress.
const batchSize = 450

// ExpiredReservation is the minimal projection the job needs to delete a
// reservation together with its slot entry.
type ExpiredReservation struct {
	ID        string
	Date      string
	StartTime string
}

// Store is the persistence surface of the retention job.
type Store interface {
	// ListExpired returns reservations whose expire_at is at or before the
	// cutoff, oldest first, up to limit entries. limit <= 0 means no cap.
	ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]ExpiredReservation, error)

	// ListAll returns every reservation regardless of age, oldest first,
	// up to limit entries. limit <= 0 means no cap.
	ListAll(ctx context.Context, limit int) ([]ExpiredReservation, error)

	// DeleteBatch removes the given reservations and their slot entries in
	// one transaction.
	DeleteBatch(ctx context.Context, batch []ExpiredReservation) error
}

// Options controls a cleanup run.
type Options struct {
	// DryRun reports what would be deleted without deleting anything.
	DryRun bool

	// DeleteAll ignores the retention cutoff and removes every reservation,
	// future bookings included. Meant for resetting a test environment.
	DeleteAll bool

	// Limit caps the number of reservations removed in one run. 0 means
	// unlimited.
	Limit int

	// Now overrides the clock, for tests. Zero value means time.Now.
	Now time.Time
}

// Run deletes reservations past their retention window and returns how
// many were (or would be, under DryRun) removed.
func Run(ctx context.Context, store Store, opts Options) (int, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	// expire_at is already date + retention, so the regular cutoff is just
	// "now". DeleteAll skips the cutoff and wipes the whole table.
	var expired []ExpiredReservation
	var err error
	if opts.DeleteAll {
		expired, err = store.ListAll(ctx, opts.Limit)
	} else {
		expired, err = store.ListExpired(ctx, now, opts.Limit)
	}
	if err != nil {
		return 0, fmt.Errorf("list expired reservations failed: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	if opts.DryRun {
		for _, r := range expired {
			log.Printf("would delete reservation %s (%s %s)", r.ID, r.Date, r.StartTime)
		}
		return len(expired), nil
	}

	deleted := 0
	for start := 0; start < len(expired); start += batchSize {
		end := start + batchSize
		if end > len(expired) {
			end = len(expired)
		}

		batch := expired[start:end]
		if err := store.DeleteBatch(ctx, batch); err != nil {
			return deleted, fmt.Errorf("delete batch failed: %w", err)
		}
		deleted += len(batch)
		log.Printf("deleted %d expired reservations (%d total)", len(batch), deleted)
	}

	return deleted, nil
}
