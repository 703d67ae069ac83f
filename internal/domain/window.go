package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// Window is a half-open interval [Start, End) of absolute instants
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a window from a civil date, a local time of day and a duration in hours.
// The date and time are interpreted in loc, which must be the venue's fixed-offset zone.
func NewWindow(date time.Time, start types.TimeString, durationHours float64, loc *time.Location) (Window, error) {
	if date.IsZero() {
		return Window{}, fmt.Errorf("%w: date is required", ErrInvalidWindow)
	}
	if loc == nil {
		return Window{}, fmt.Errorf("%w: location is required", ErrInvalidWindow)
	}
	if err := start.Validate(); err != nil {
		return Window{}, fmt.Errorf("%w: start time %q: %v", ErrInvalidWindow, start, err)
	}
	// 24:00 допустимо только как конец интервала
	if start.Minutes() >= 24*60 {
		return Window{}, fmt.Errorf("%w: start time %q is end of day", ErrInvalidWindow, start)
	}
	if math.IsNaN(durationHours) || durationHours <= 0 || durationHours > MaxDurationHours {
		return Window{}, fmt.Errorf("%w: duration %v hours", ErrInvalidWindow, durationHours)
	}

	y, m, d := date.Date()
	begin := time.Date(y, m, d, start.Hour(), start.Minute(), 0, 0, loc)
	duration := time.Duration(math.Round(durationHours*3600)) * time.Second

	return Window{Start: begin, End: begin.Add(duration)}, nil
}

// Overlaps reports whether two windows share at least one instant.
// Back-to-back windows (a.End == b.Start) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

// Contains reports whether t lies within [Start, End)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns the window length
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// IsZero reports whether the window is unset
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// StartLabel returns the local HH:MM of the window start
func (w Window) StartLabel(loc *time.Location) types.TimeString {
	return types.NewTimeString(w.Start.In(loc))
}

// EndLabel returns the local HH:MM of the window end
func (w Window) EndLabel(loc *time.Location) types.TimeString {
	return types.NewTimeString(w.End.In(loc))
}

// ParseDate parses YYYY-MM-DD as a civil date in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrInvalidWindow, s, err)
	}
	return t, nil
}

// DayWindow returns the civil day [00:00, next 00:00) in loc
func DayWindow(day time.Time, loc *time.Location) Window {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}
