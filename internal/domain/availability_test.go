package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

var defaultHours = OperatingHours{Open: "09:00", Close: "20:00"}

func TestBookedSlots_FullHalfHour(t *testing.T) {
	now := time.Now()
	active := []*Booking{
		bookingAt(t, 1, "14:00", 0.5, StatusConfirmed, now),
		bookingAt(t, 2, "14:00", 0.5, StatusConfirmed, now),
		bookingAt(t, 3, "14:00", 0.5, StatusConfirmed, now),
	}

	booked, err := BookedSlots(testDay(), defaultHours, 30, 3, active, sast)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00"}, booked)
}

func TestBookedSlots_PartialOverlapCounts(t *testing.T) {
	now := time.Now()
	// 14:15-14:45 задевает слоты 14:00 и 14:30
	active := []*Booking{
		bookingAt(t, 1, "14:15", 0.5, StatusConfirmed, now),
		bookingAt(t, 2, "14:00", 1, StatusConfirmed, now),
		bookingAt(t, 3, "14:00", 1, StatusConfirmed, now),
	}

	booked, err := BookedSlots(testDay(), defaultHours, 30, 3, active, sast)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"14:00", "14:30"}, booked)
}

func TestBookedSlots_NotSaturated(t *testing.T) {
	now := time.Now()
	active := []*Booking{
		bookingAt(t, 1, "14:00", 2, StatusConfirmed, now),
		bookingAt(t, 2, "14:00", 2, StatusConfirmed, now),
	}

	booked, err := BookedSlots(testDay(), defaultHours, 30, 3, active, sast)
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestSlotOccupancies_Grid(t *testing.T) {
	slots, err := SlotOccupancies(testDay(), defaultHours, 30, 3, nil, sast)
	require.NoError(t, err)

	require.Len(t, slots, 22)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("19:30"), slots[21].StartTime)
	assert.Equal(t, 3, slots[0].AvailableSpots())
}

func TestSlotOccupancies_SlotMustFitBeforeClose(t *testing.T) {
	slots, err := SlotOccupancies(testDay(), OperatingHours{Open: "09:00", Close: "10:45"}, 30, 3, nil, sast)
	require.NoError(t, err)

	labels := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.StartTime)
	}
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, labels)
}

func TestSlotOccupancies_Closed(t *testing.T) {
	slots, err := SlotOccupancies(testDay(), OperatingHours{Closed: true}, 30, 3, nil, sast)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSlotOccupancies_UntilMidnight(t *testing.T) {
	slots, err := SlotOccupancies(testDay(), OperatingHours{Open: "22:00", Close: "24:00"}, 60, 3, nil, sast)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("23:00"), slots[1].StartTime)
}

func TestOperatingHours_Covers(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
		hours float64
		want  bool
	}{
		{name: "inside", start: "10:00", hours: 2, want: true},
		{name: "ends at close", start: "19:00", hours: 1, want: true},
		{name: "past close", start: "19:30", hours: 1, want: false},
		{name: "before open", start: "08:30", hours: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultHours.Covers(testDay(), mustWindow(t, tt.start, tt.hours), sast))
		})
	}

	assert.False(t, OperatingHours{Closed: true}.Covers(testDay(), mustWindow(t, "10:00", 1), sast))
}

func TestWeeklySchedule_For(t *testing.T) {
	schedule := WeeklySchedule{
		time.Friday: {Open: "09:00", Close: "22:00"},
	}

	// 14.03.2025 - пятница
	assert.Equal(t, types.TimeString("22:00"), schedule.For(testDay()).Close)
	assert.True(t, schedule.For(testDay().AddDate(0, 0, 1)).Closed)
}
