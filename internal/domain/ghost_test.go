package domain

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGhostFilter_IsActiveOccupant(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	filter := NewGhostFilter(20 * time.Minute)

	tests := []struct {
		name    string
		status  BookingStatus
		created time.Duration
		want    bool
	}{
		{name: "fresh pending", status: StatusPending, created: 5 * time.Minute, want: true},
		{name: "pending just under timeout", status: StatusPending, created: 20*time.Minute - time.Millisecond, want: true},
		{name: "pending at timeout", status: StatusPending, created: 20 * time.Minute, want: false},
		{name: "old pending", status: StatusPending, created: 25 * time.Minute, want: false},
		{name: "old confirmed", status: StatusConfirmed, created: 48 * time.Hour, want: true},
		{name: "paid in store", status: StatusPaidInstore, created: 48 * time.Hour, want: true},
		{name: "completed", status: StatusCompleted, created: 48 * time.Hour, want: true},
		{name: "unknown status", status: BookingStatus("on_hold"), created: time.Minute, want: false},
		{name: "fresh cancelled", status: StatusCancelled, created: time.Minute, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status, CreatedAt: now.Add(-tt.created)}
			assert.Equal(t, tt.want, filter.IsActiveOccupant(b, now))
		})
	}
}

func TestGhostFilter_Active(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	filter := NewGhostFilter(0)

	bookings := []*Booking{
		{BayID: 1, Status: StatusPending, CreatedAt: now.Add(-25 * time.Minute)},
		{BayID: 2, Status: StatusPending, CreatedAt: now.Add(-time.Minute)},
		{BayID: 3, Status: StatusConfirmed, CreatedAt: now.Add(-time.Hour)},
		{BayID: 1, Status: StatusCancelled, CreatedAt: now},
	}

	active, ghosts := filter.Active(bookings, now)

	assert.Equal(t, DefaultGhostTimeout, filter.Timeout)
	assert.Equal(t, 1, ghosts)
	if assert.Len(t, active, 2) {
		assert.Equal(t, 2, active[0].BayID)
		assert.Equal(t, 3, active[1].BayID)
	}
}

func TestStatusSets(t *testing.T) {
	all := []BookingStatus{StatusPending, StatusConfirmed, StatusPaidInstore, StatusCompleted, StatusCancelled}

	for _, s := range all {
		assert.Equal(t, s != StatusCancelled, slices.Contains(NonCancelledStatuses, s), "non-cancelled set: %s", s)
		assert.Equal(t, s != StatusCancelled && s != StatusPending, s.IsOccupying(), "occupying set: %s", s)
	}

	assert.Equal(t, []string{"pending", "confirmed", "paid_instore", "completed"}, StatusValues(NonCancelledStatuses))
}
