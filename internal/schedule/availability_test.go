package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeSlots(t *testing.T) {
	// A Wednesday far in the future so "today" filtering never applies.
	date := time.Date(2027, 4, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Wednesday, date.Weekday())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	hours := WorkingHours{
		Days: map[string]WorkingDay{
			"3": {IsOpen: true, Open: "09:00", Close: "12:00"},
		},
	}

	t.Run("Booked interval removes its covered starts", func(t *testing.T) {
		occupied := []Interval{{Start: 600, End: 660}} // 10:00-11:00
		got := FreeSlots(date, occupied, hours, 30, now)
		assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, got)
	})

	t.Run("Empty day offers the full grid", func(t *testing.T) {
		got := FreeSlots(date, nil, hours, 30, now)
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, got)
	})

	t.Run("Vacation short circuits", func(t *testing.T) {
		vacation := hours
		vacation.Vacation = Vacation{Enabled: true, From: "2027-04-01", To: "2027-04-10"}
		assert.Empty(t, FreeSlots(date, nil, vacation, 30, now))
	})

	t.Run("Closed day yields nothing", func(t *testing.T) {
		closed := WorkingHours{
			Days: map[string]WorkingDay{
				"3": {IsOpen: false},
			},
		}
		assert.Empty(t, FreeSlots(date, nil, closed, 30, now))
	})

	t.Run("Today excludes past starts", func(t *testing.T) {
		// now is 10:00 on the requested date: 10:00 itself is not strictly
		// in the future, so 10:30 is the first remaining start.
		sameDayNow := time.Date(2027, 4, 7, 10, 0, 0, 0, time.UTC)
		got := FreeSlots(date, nil, hours, 30, sameDayNow)
		assert.Equal(t, []string{"10:30", "11:00", "11:30"}, got)
	})

	t.Run("Start inside an interval is excluded even mid range", func(t *testing.T) {
		// 60-minute booking at 09:30 covers the 10:00 start too.
		occupied := []Interval{{Start: 570, End: 630}}
		got := FreeSlots(date, occupied, hours, 30, now)
		assert.Equal(t, []string{"09:00", "10:30", "11:00", "11:30"}, got)
	})
}

func TestFits(t *testing.T) {
	day := WorkingDay{IsOpen: true, Open: "09:00", Close: "12:00"}

	tests := []struct {
		name     string
		start    int
		duration int
		occupied []Interval
		want     bool
	}{
		{name: "Empty day accepts", start: 600, duration: 30, want: true},
		{name: "Touching intervals do not overlap", start: 660, duration: 30, occupied: []Interval{{600, 660}}, want: true},
		{name: "Ends where next begins", start: 570, duration: 30, occupied: []Interval{{600, 660}}, want: true},
		{name: "Exact duplicate rejected", start: 600, duration: 60, occupied: []Interval{{600, 660}}, want: false},
		{name: "Candidate straddles start of existing", start: 570, duration: 60, occupied: []Interval{{600, 660}}, want: false},
		{name: "Candidate inside existing", start: 615, duration: 30, occupied: []Interval{{600, 690}}, want: false},
		{name: "Existing inside candidate", start: 570, duration: 120, occupied: []Interval{{600, 630}}, want: false},
		{name: "Ends exactly at close", start: 690, duration: 30, want: true},
		{name: "Runs past close", start: 691, duration: 30, want: false},
		{name: "Starts before open", start: 510, duration: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fits(tt.start, tt.duration, tt.occupied, day))
		})
	}

	t.Run("Closed day rejects", func(t *testing.T) {
		assert.False(t, Fits(600, 30, nil, WorkingDay{IsOpen: false}))
	})
}
