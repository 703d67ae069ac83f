package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

var sast = time.FixedZone("SAST", 2*60*60)

func testDay() time.Time {
	return time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
}

func mustWindow(t *testing.T, start types.TimeString, hours float64) Window {
	t.Helper()
	w, err := NewWindow(testDay(), start, hours, sast)
	require.NoError(t, err)
	return w
}

func TestNewWindow(t *testing.T) {
	w := mustWindow(t, "14:00", 1.5)

	assert.Equal(t, time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC), w.Start.UTC())
	assert.Equal(t, time.Date(2025, time.March, 14, 13, 30, 0, 0, time.UTC), w.End.UTC())
	assert.Equal(t, 90*time.Minute, w.Duration())
	assert.Equal(t, types.TimeString("15:30"), w.EndLabel(sast))
}

func TestNewWindow_IgnoresServerZone(t *testing.T) {
	// дата, распарсенная в другой зоне, трактуется как гражданская дата площадки
	day := time.Date(2025, time.March, 14, 23, 0, 0, 0, time.FixedZone("X", -5*60*60))

	w, err := NewWindow(day, "09:00", 1, sast)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 14, 7, 0, 0, 0, time.UTC), w.Start.UTC())
}

func TestNewWindow_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		date  time.Time
		start types.TimeString
		hours float64
	}{
		{name: "zero date", date: time.Time{}, start: "10:00", hours: 1},
		{name: "malformed time", date: testDay(), start: "10-00", hours: 1},
		{name: "hour out of range", date: testDay(), start: "25:00", hours: 1},
		{name: "end of day start", date: testDay(), start: "24:00", hours: 1},
		{name: "zero duration", date: testDay(), start: "10:00", hours: 0},
		{name: "negative duration", date: testDay(), start: "10:00", hours: -1},
		{name: "too long", date: testDay(), start: "10:00", hours: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWindow(tt.date, tt.start, tt.hours, sast)
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}

func TestWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Window
		want bool
	}{
		{name: "back to back", a: mustWindow(t, "10:00", 1), b: mustWindow(t, "11:00", 1), want: false},
		{name: "back to back reversed", a: mustWindow(t, "11:00", 1), b: mustWindow(t, "10:00", 1), want: false},
		{name: "partial", a: mustWindow(t, "14:00", 1), b: mustWindow(t, "14:30", 1), want: true},
		{name: "contained", a: mustWindow(t, "09:00", 4), b: mustWindow(t, "10:00", 0.5), want: true},
		{name: "identical", a: mustWindow(t, "10:00", 1), b: mustWindow(t, "10:00", 1), want: true},
		{name: "disjoint", a: mustWindow(t, "09:00", 1), b: mustWindow(t, "15:00", 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	w := mustWindow(t, "10:00", 1)

	assert.True(t, w.Contains(w.Start))
	assert.False(t, w.Contains(w.End))
	assert.True(t, w.Contains(w.Start.Add(59*time.Minute)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14", sast)
	require.NoError(t, err)
	assert.Equal(t, 14, d.Day())

	_, err = ParseDate("14/03/2025", sast)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
