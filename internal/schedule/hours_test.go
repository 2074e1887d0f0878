package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "Midnight", input: "00:00", want: 0},
		{name: "Morning", input: "09:30", want: 570},
		{name: "Late evening", input: "23:59", want: 1439},
		{name: "Missing minutes", input: "10", want: 600},
		{name: "Malformed hour counts as zero", input: "xx:30", want: 30},
		{name: "Malformed minutes count as zero", input: "10:yy", want: 600},
		{name: "Empty string", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeToMinutes(tt.input))
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "18:30", MinutesToTime(1110))
}

func TestDayConfigFallsBackToDefaults(t *testing.T) {
	// Configuration that only covers Monday.
	hours := WorkingHours{
		Days: map[string]WorkingDay{
			"1": {IsOpen: true, Open: "08:00", Close: "14:00"},
		},
	}

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, "08:00", hours.DayConfig(monday).Open)

	// Sunday is absent from the config, so the built-in entry applies.
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())
	got := hours.DayConfig(sunday)
	assert.True(t, got.IsOpen)
	assert.Equal(t, "10:00", got.Open)
	assert.Equal(t, "16:00", got.Close)
}

func TestOnVacation(t *testing.T) {
	hours := WorkingHours{
		Vacation: Vacation{Enabled: true, From: "2026-07-10", To: "2026-07-20"},
	}

	day := func(value string) time.Time {
		d, err := time.Parse(DateFormat, value)
		require.NoError(t, err)
		return d
	}

	assert.False(t, hours.OnVacation(day("2026-07-09")), "day before the window")
	assert.True(t, hours.OnVacation(day("2026-07-10")), "first day is inclusive")
	assert.True(t, hours.OnVacation(day("2026-07-15")))
	assert.True(t, hours.OnVacation(day("2026-07-20")), "last day is inclusive")
	assert.False(t, hours.OnVacation(day("2026-07-21")), "day after the window")

	disabled := WorkingHours{
		Vacation: Vacation{Enabled: false, From: "2026-07-10", To: "2026-07-20"},
	}
	assert.False(t, disabled.OnVacation(day("2026-07-15")), "disabled window never matches")

	empty := WorkingHours{Vacation: Vacation{Enabled: true}}
	assert.False(t, empty.OnVacation(day("2026-07-15")), "window without dates never matches")
}

func TestBuildTimeSlots(t *testing.T) {
	t.Run("Half hour grid", func(t *testing.T) {
		got := BuildTimeSlots("09:00", "11:00", 30)
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, got)
	})

	t.Run("Last slot must fully fit", func(t *testing.T) {
		got := BuildTimeSlots("09:00", "10:15", 30)
		assert.Equal(t, []string{"09:00", "09:30"}, got)
	})

	t.Run("Closed window yields nothing", func(t *testing.T) {
		assert.Empty(t, BuildTimeSlots("12:00", "12:00", 30))
	})

	t.Run("Non positive step yields nothing", func(t *testing.T) {
		assert.Empty(t, BuildTimeSlots("09:00", "17:00", 0))
	})
}

func TestWithinWorkingHours(t *testing.T) {
	day := WorkingDay{IsOpen: true, Open: "09:00", Close: "12:00"}

	assert.True(t, WithinWorkingHours(day, "09:00", 30))
	assert.True(t, WithinWorkingHours(day, "11:30", 30), "interval may end exactly at close")
	assert.False(t, WithinWorkingHours(day, "11:31", 30), "interval past close is rejected")
	assert.False(t, WithinWorkingHours(day, "08:30", 30), "start before open is rejected")
	assert.False(t, WithinWorkingHours(WorkingDay{IsOpen: false}, "10:00", 30), "closed day rejects everything")
}

func TestNormalize(t *testing.T) {
	t.Run("Nil config returns defaults", func(t *testing.T) {
		got := Normalize(nil)
		assert.Equal(t, DefaultWorkingHours(), got)
	})

	t.Run("Partial config keeps defaults for missing days", func(t *testing.T) {
		got := Normalize(&WorkingHours{
			Days: map[string]WorkingDay{
				"3": {IsOpen: false},
			},
		})
		assert.False(t, got.Days["3"].IsOpen)
		assert.Equal(t, "09:00", got.Days["1"].Open, "untouched day keeps default")
		assert.Len(t, got.Days, 7)
	})

	t.Run("Empty times fall back", func(t *testing.T) {
		got := Normalize(&WorkingHours{
			Days: map[string]WorkingDay{
				"2": {IsOpen: true},
			},
		})
		assert.Equal(t, "09:00", got.Days["2"].Open)
		assert.Equal(t, "17:00", got.Days["2"].Close)
	})
}

func TestValidate(t *testing.T) {
	valid := DefaultWorkingHours()
	require.NoError(t, valid.Validate())

	t.Run("Missing weekday", func(t *testing.T) {
		hours := DefaultWorkingHours()
		delete(hours.Days, "4")
		assert.ErrorIs(t, hours.Validate(), ErrInvalidDay)
	})

	t.Run("Bad time format", func(t *testing.T) {
		hours := DefaultWorkingHours()
		hours.Days["1"] = WorkingDay{IsOpen: true, Open: "9am", Close: "19:00"}
		assert.ErrorIs(t, hours.Validate(), ErrInvalidTime)
	})

	t.Run("Open after close", func(t *testing.T) {
		hours := DefaultWorkingHours()
		hours.Days["1"] = WorkingDay{IsOpen: true, Open: "19:00", Close: "09:00"}
		assert.ErrorIs(t, hours.Validate(), ErrOpenAfterClose)
	})

	t.Run("Closed day skips time checks", func(t *testing.T) {
		hours := DefaultWorkingHours()
		hours.Days["0"] = WorkingDay{IsOpen: false}
		assert.NoError(t, hours.Validate())
	})

	t.Run("Inverted vacation range", func(t *testing.T) {
		hours := DefaultWorkingHours()
		hours.Vacation = Vacation{Enabled: true, From: "2026-08-10", To: "2026-08-01"}
		assert.ErrorIs(t, hours.Validate(), ErrInvalidVacation)
	})
}
