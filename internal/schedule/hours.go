package schedule

import (
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes converts "HH:MM" into minutes since midnight.
// Malformed components count as 0, mirroring the lenient handling the
// booking flow has always relied on for admin-entered values.
func TimeToMinutes(value string) int {
	parts := strings.SplitN(value, ":", 2)
	h := 0
	m := 0
	if len(parts) > 0 {
		if v, err := strconv.Atoi(parts[0]); err == nil {
			h = v
		}
	}
	if len(parts) > 1 {
		if v, err := strconv.Atoi(parts[1]); err == nil {
			m = v
		}
	}
	return h*60 + m
}

// DayConfig selects the weekday entry for the given date (Sunday = 0).
// Falls back to the default entry so a missing day never closes the shop.
func (w WorkingHours) DayConfig(date time.Time) WorkingDay {
	key := strconv.Itoa(int(date.Weekday()))
	if day, ok := w.Days[key]; ok {
		return day
	}
	return DefaultWorkingHours().Days[key]
}

// OnVacation reports whether the date falls inside the configured vacation
// window. The window is inclusive on both ends at day granularity.
func (w WorkingHours) OnVacation(date time.Time) bool {
	if !w.Vacation.Enabled {
		return false
	}
	if w.Vacation.From == "" || w.Vacation.To == "" {
		return false
	}

	from, err := time.ParseInLocation(DateFormat, w.Vacation.From, date.Location())
	if err != nil {
		return false
	}
	to, err := time.ParseInLocation(DateFormat, w.Vacation.To, date.Location())
	if err != nil {
		return false
	}
	// To is inclusive for the whole day.
	to = to.Add(24*time.Hour - time.Second)

	return !date.Before(from) && !date.After(to)
}

// BuildTimeSlots generates every step-aligned start time between open and
// close such that a full step still fits before closing. The sequence is
// ascending and deterministic for identical inputs.
func BuildTimeSlots(open, close string, stepMinutes int) []string {
	if stepMinutes <= 0 {
		return nil
	}

	start := TimeToMinutes(open)
	end := TimeToMinutes(close)

	var slots []string
	for t := start; t+stepMinutes <= end; t += stepMinutes {
		slots = append(slots, MinutesToTime(t))
	}
	return slots
}

// WithinWorkingHours reports whether an interval starting at startTime and
// lasting durationMinutes fits inside the day's open window.
func WithinWorkingHours(day WorkingDay, startTime string, durationMinutes int) bool {
	if !day.IsOpen {
		return false
	}
	start := TimeToMinutes(startTime)
	end := start + durationMinutes
	return start >= TimeToMinutes(day.Open) && end <= TimeToMinutes(day.Close)
}
