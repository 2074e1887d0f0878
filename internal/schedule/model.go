package schedule

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/glisicmilica/barberline-backend/internal/pkg/apperror"
)

var (
	ErrInvalidDay      = apperror.New(http.StatusBadRequest, "day entries must cover weekdays 0-6")
	ErrInvalidTime     = apperror.New(http.StatusBadRequest, "times must be in HH:MM format")
	ErrOpenAfterClose  = apperror.New(http.StatusBadRequest, "open time must be before close time")
	ErrInvalidVacation = apperror.New(http.StatusBadRequest, "vacation range is invalid")
)

// DateFormat and TimeFormat are the wire formats used throughout the API.
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// WorkingDay holds the open/close window for a single weekday.
type WorkingDay struct {
	IsOpen bool   `json:"isOpen"`
	Open   string `json:"open"`
	Close  string `json:"close"`
}

// Vacation is an inclusive whole-day exclusion window.
type Vacation struct {
	Enabled bool   `json:"enabled"`
	From    string `json:"from"` // YYYY-MM-DD, inclusive
	To      string `json:"to"`   // YYYY-MM-DD, inclusive
}

// WorkingHours is the shop-wide schedule configuration.
// Days are keyed by weekday number as a string, Sunday = "0".
type WorkingHours struct {
	Days     map[string]WorkingDay `json:"days"`
	Vacation Vacation              `json:"vacation"`
}

// DefaultWorkingHours returns the built-in schedule used when no
// configuration has been saved yet, or to fill gaps in a partial one.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Days: map[string]WorkingDay{
			"0": {IsOpen: true, Open: "10:00", Close: "16:00"},
			"1": {IsOpen: true, Open: "09:00", Close: "19:00"},
			"2": {IsOpen: true, Open: "09:00", Close: "19:00"},
			"3": {IsOpen: true, Open: "09:00", Close: "19:00"},
			"4": {IsOpen: true, Open: "09:00", Close: "19:00"},
			"5": {IsOpen: true, Open: "09:00", Close: "19:00"},
			"6": {IsOpen: true, Open: "09:00", Close: "18:00"},
		},
		Vacation: Vacation{Enabled: false},
	}
}

// Normalize merges a stored (possibly partial) configuration over the
// defaults so that every weekday has a usable entry. Empty open/close
// values fall back to 09:00-17:00.
func Normalize(value *WorkingHours) WorkingHours {
	defaults := DefaultWorkingHours()
	if value == nil || value.Days == nil {
		return defaults
	}

	days := make(map[string]WorkingDay, 7)
	for key, day := range defaults.Days {
		days[key] = day
	}
	for key, day := range value.Days {
		merged := day
		if merged.Open == "" {
			merged.Open = "09:00"
		}
		if merged.Close == "" {
			merged.Close = "17:00"
		}
		days[key] = merged
	}

	return WorkingHours{
		Days:     days,
		Vacation: value.Vacation,
	}
}

// Validate checks an admin-submitted configuration before it is stored.
func (w WorkingHours) Validate() error {
	for i := 0; i < 7; i++ {
		day, ok := w.Days[strconv.Itoa(i)]
		if !ok {
			return ErrInvalidDay
		}
		if !day.IsOpen {
			continue
		}
		if !validTime(day.Open) || !validTime(day.Close) {
			return ErrInvalidTime
		}
		if TimeToMinutes(day.Open) >= TimeToMinutes(day.Close) {
			return ErrOpenAfterClose
		}
	}

	if w.Vacation.Enabled {
		from, errFrom := time.Parse(DateFormat, w.Vacation.From)
		to, errTo := time.Parse(DateFormat, w.Vacation.To)
		if errFrom != nil || errTo != nil || to.Before(from) {
			return ErrInvalidVacation
		}
	}

	return nil
}

func validTime(value string) bool {
	_, err := time.Parse(TimeFormat, value)
	return err == nil
}

// MinutesToTime formats minutes-since-midnight back into "HH:MM".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
