package domain

import "fmt"

// CountOverlapping подсчитывает бронирования, пересекающиеся с окном
// Касание границ (конец одного = начало другого) пересечением не считается
func CountOverlapping(requested Window, active []*Booking) int {
	count := 0
	for _, b := range active {
		if b.Window().Overlaps(requested) {
			count++
		}
	}
	return count
}

// TakenBays возвращает множество боксов, занятых активными бронированиями в окне
func TakenBays(requested Window, active []*Booking) map[int]struct{} {
	taken := make(map[int]struct{})
	for _, b := range active {
		if b.BayID > 0 && b.Window().Overlaps(requested) {
			taken[b.BayID] = struct{}{}
		}
	}
	return taken
}

// AssignBay returns the lowest bay id in 1..poolSize not taken by an active booking
// overlapping requested, or ErrCapacityExceeded when every bay is taken.
// active must already be ghost-filtered.
func AssignBay(requested Window, poolSize int, active []*Booking) (int, error) {
	if poolSize < 1 {
		return 0, ErrInvalidPoolSize
	}

	taken := TakenBays(requested, active)

	for bay := 1; bay <= poolSize; bay++ {
		if _, ok := taken[bay]; !ok {
			return bay, nil
		}
	}

	return 0, fmt.Errorf("%w: all %d bays taken", ErrCapacityExceeded, poolSize)
}
