package get_available_slots

import (
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
)

// toSlots переводит занятость в слоты ответа
// Для сегодняшней даты уже начавшиеся слоты отбрасываются, для прошедших дат сетка пустая
func toSlots(grid []domain.SlotOccupancy, granularity int, day, now time.Time, loc *time.Location) []Slot {
	if isDateInPast(day, now.In(loc)) {
		return []Slot{}
	}

	result := make([]Slot, 0, len(grid))
	for i := range grid {
		if grid[i].Window.Start.Before(now) {
			continue
		}

		result = append(result, Slot{
			StartTime:       grid[i].StartTime,
			DurationMinutes: granularity,
			AvailableSpots:  grid[i].AvailableSpots(),
			TotalSpots:      grid[i].TotalSpots,
		})
	}

	return result
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
