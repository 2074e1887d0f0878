package schedule

import "time"

// Interval is an occupied time range in minutes since midnight.
// A reservation occupies [Start, End).
type Interval struct {
	Start int
	End   int
}

// FreeSlots enumerates the bookable start times for a date given the day's
// already-fetched reservations. It is a read-side hint computed from a
// snapshot: the authoritative conflict check happens again inside the
// reservation transaction.
//
// A candidate slot is excluded when its start instant falls inside any
// occupied interval, and, if the date is today, when it is not strictly
// after the current minute.
func FreeSlots(date time.Time, occupied []Interval, hours WorkingHours, stepMinutes int, now time.Time) []string {
	if hours.OnVacation(date) {
		return nil
	}

	day := hours.DayConfig(date)
	if !day.IsOpen {
		return nil
	}

	candidates := BuildTimeSlots(day.Open, day.Close, stepMinutes)

	var free []string
	for _, slot := range candidates {
		start := TimeToMinutes(slot)
		conflict := false
		for _, iv := range occupied {
			if start >= iv.Start && start < iv.End {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		free = append(free, slot)
	}

	if sameDay(date, now) {
		nowMinutes := now.Hour()*60 + now.Minute()
		filtered := free[:0]
		for _, slot := range free {
			if TimeToMinutes(slot) > nowMinutes {
				filtered = append(filtered, slot)
			}
		}
		free = filtered
	}

	return free
}

// Fits is the strict interval check used before every commit: the candidate
// [start, start+duration) must not intersect any occupied interval and must
// lie inside the day's open window. Unlike FreeSlots it tests the full
// range, which matters for services longer than the slot step.
func Fits(startMinutes, durationMinutes int, occupied []Interval, day WorkingDay) bool {
	if !day.IsOpen {
		return false
	}

	end := startMinutes + durationMinutes
	if startMinutes < TimeToMinutes(day.Open) || end > TimeToMinutes(day.Close) {
		return false
	}

	for _, iv := range occupied {
		if startMinutes < iv.End && iv.Start < end {
			return false
		}
	}
	return true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
