package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

func TestBooking_EffectiveStatus(t *testing.T) {
	w := mustWindow(t, "10:00", 1)
	during := w.Start.Add(10 * time.Minute)
	after := w.End

	tests := []struct {
		status BookingStatus
		at     time.Time
		want   BookingStatus
	}{
		{status: StatusConfirmed, at: during, want: StatusConfirmed},
		{status: StatusConfirmed, at: after, want: StatusCompleted},
		{status: StatusPaidInstore, at: after, want: StatusCompleted},
		{status: StatusPending, at: after, want: StatusPending},
		{status: StatusCancelled, at: after, want: StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status, SlotStart: w.Start, SlotEnd: w.End}
			assert.Equal(t, tt.want, b.EffectiveStatus(tt.at))
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	w := mustWindow(t, "10:00", 1)
	b := &Booking{Status: StatusConfirmed, SlotStart: w.Start, SlotEnd: w.End}

	assert.True(t, b.CanBeCancelled(w.Start))
	assert.False(t, b.CanBeCancelled(w.End.Add(time.Minute)))

	b.Status = StatusCancelled
	assert.False(t, b.CanBeCancelled(w.Start))
}

func TestBookingDraft_ToBooking(t *testing.T) {
	w := mustWindow(t, "19:00", 1.5)
	now := time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC)

	b := BookingDraft{SessionType: "quickplay", TotalPrice: 300}.ToBooking(w, 2, sast, now)

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, 2, b.BayID)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, PaymentPending, b.PaymentStatus)
	assert.Equal(t, types.TimeString("19:00"), b.StartTime)
	assert.Equal(t, types.TimeString("20:30"), b.EndTime)
	assert.Equal(t, 1.5, b.DurationHours)
	assert.Equal(t, "2025-03-14", b.BookingDate.Format(DateFormat))
	assert.Equal(t, now, b.CreatedAt)
}
