package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// OperatingHours часы работы площадки в конкретный день
type OperatingHours struct {
	Open   types.TimeString
	Close  types.TimeString
	Closed bool
}

// Window returns the opening interval of the day; ok=false when the venue is closed
func (h OperatingHours) Window(day time.Time, loc *time.Location) (Window, bool) {
	if h.Closed || !h.Open.IsBefore(h.Close) {
		return Window{}, false
	}

	open, err := NewWindow(day, h.Open, float64(h.Close.Minutes()-h.Open.Minutes())/60, loc)
	if err != nil {
		return Window{}, false
	}
	return open, true
}

// Covers reports whether the requested window lies fully inside opening hours of day
func (h OperatingHours) Covers(day time.Time, requested Window, loc *time.Location) bool {
	open, ok := h.Window(day, loc)
	if !ok {
		return false
	}
	return !requested.Start.Before(open.Start) && !requested.End.After(open.End)
}

// WeeklySchedule часы работы по дням недели
// День, отсутствующий в расписании, считается выходным
type WeeklySchedule map[time.Weekday]OperatingHours

// For возвращает часы работы на civil-дату day
func (s WeeklySchedule) For(day time.Time) OperatingHours {
	y, m, d := day.Date()
	weekday := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Weekday()

	hours, ok := s[weekday]
	if !ok {
		return OperatingHours{Closed: true}
	}
	return hours
}

// SlotOccupancy represents how many bays are taken during one display slot
type SlotOccupancy struct {
	StartTime  types.TimeString
	Window     Window
	Occupied   int
	TotalSpots int
}

// IsFull returns true if every bay is taken for at least part of the slot
func (s *SlotOccupancy) IsFull() bool {
	return s.Occupied >= s.TotalSpots
}

// AvailableSpots returns the number of free bays, never negative
func (s *SlotOccupancy) AvailableSpots() int {
	if s.Occupied >= s.TotalSpots {
		return 0
	}
	return s.TotalSpots - s.Occupied
}

// SlotOccupancies разбивает часы работы на слоты по granularity минут
// и для каждого считает активные бронирования, пересекающиеся со слотом.
// Слот, выходящий за время закрытия, не генерируется.
func SlotOccupancies(
	day time.Time,
	hours OperatingHours,
	granularity int,
	poolSize int,
	active []*Booking,
	loc *time.Location,
) ([]SlotOccupancy, error) {
	if poolSize < 1 {
		return nil, ErrInvalidPoolSize
	}
	if granularity <= 0 {
		return nil, fmt.Errorf("%w: granularity %d minutes", ErrInvalidWindow, granularity)
	}
	if hours.Closed {
		return []SlotOccupancy{}, nil
	}

	result := make([]SlotOccupancy, 0)
	current := hours.Open

	for current.IsBefore(hours.Close) {
		slotEnd, err := current.AddMinutes(granularity)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(hours.Close) {
			break
		}

		window, err := NewWindow(day, current, float64(granularity)/60, loc)
		if err != nil {
			return nil, err
		}

		result = append(result, SlotOccupancy{
			StartTime:  current,
			Window:     window,
			Occupied:   CountOverlapping(window, active),
			TotalSpots: poolSize,
		})

		current = slotEnd
	}

	return result, nil
}

// BookedSlots returns the ordered start labels of slots where all poolSize bays are taken.
// active must already be ghost-filtered.
func BookedSlots(
	day time.Time,
	hours OperatingHours,
	granularity int,
	poolSize int,
	active []*Booking,
	loc *time.Location,
) ([]types.TimeString, error) {
	slots, err := SlotOccupancies(day, hours, granularity, poolSize, active, loc)
	if err != nil {
		return nil, err
	}

	booked := make([]types.TimeString, 0)
	for i := range slots {
		if slots[i].IsFull() {
			booked = append(booked, slots[i].StartTime)
		}
	}

	return booked, nil
}
