package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotID(t *testing.T) {
	assert.Equal(t, "2026-09-01_10:30", SlotID("2026-09-01", "10:30"))

	// Same date with different times must never collide.
	assert.NotEqual(t, SlotID("2026-09-01", "10:30"), SlotID("2026-09-01", "11:00"))
	// Same time on different dates must never collide.
	assert.NotEqual(t, SlotID("2026-09-01", "10:30"), SlotID("2026-09-02", "10:30"))
}

func TestEndTimeFor(t *testing.T) {
	assert.Equal(t, "10:30", EndTimeFor("10:00", 30))
	assert.Equal(t, "11:00", EndTimeFor("10:00", 60))
	assert.Equal(t, "19:00", EndTimeFor("18:30", 30))
}

func TestExpireAtFor(t *testing.T) {
	date := time.Date(2026, 9, 1, 14, 45, 0, 0, time.UTC)

	got := ExpireAtFor(date)

	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, RetentionDays)
	assert.Equal(t, want, got)
	// Intra-day time must not leak into the deadline.
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestKindValid(t *testing.T) {
	assert.True(t, KindUser.Valid())
	assert.True(t, KindGuest.Valid())
	assert.True(t, KindBreak.Valid())
	assert.False(t, Kind("walkin").Valid())
	assert.False(t, Kind("").Valid())
}

func TestIsOwnedBy(t *testing.T) {
	owner := "b1b2c3d4"
	r := &Reservation{UserID: &owner}

	assert.True(t, r.IsOwnedBy("b1b2c3d4"))
	assert.False(t, r.IsOwnedBy("someone-else"))
	assert.False(t, (&Reservation{}).IsOwnedBy("b1b2c3d4"), "guest and break entries have no owner")
}
