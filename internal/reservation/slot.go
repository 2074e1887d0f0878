package reservation

import (
	"time"

	"github.com/glisicmilica/barberline-backend/internal/schedule"
)

// SlotID builds the deterministic key for a (date, startTime) pair.
// The slots table keys on it, so two reservations can never claim the
// same start instant: the second insert fails on the primary key. A slot
// row exists iff an active reservation occupies that exact start instant,
// and is only ever written inside the same transaction as its reservation.
func SlotID(date, startTime string) string {
	return date + "_" + startTime
}

// EndTimeFor derives the end time from a start time and duration.
func EndTimeFor(startTime string, durationMinutes int) string {
	return schedule.MinutesToTime(schedule.TimeToMinutes(startTime) + durationMinutes)
}

// ExpireAtFor computes the retention deadline for a reservation date:
// midnight of the date plus the retention window.
func ExpireAtFor(date time.Time) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.AddDate(0, 0, RetentionDays)
}
