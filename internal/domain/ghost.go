package domain

import "time"

// GhostFilter отсекает брошенные неоплаченные бронирования.
// Pending запись занимает бокс только пока с момента создания прошло меньше Timeout.
type GhostFilter struct {
	Timeout time.Duration
}

// NewGhostFilter создает фильтр; timeout <= 0 заменяется значением по умолчанию
func NewGhostFilter(timeout time.Duration) GhostFilter {
	if timeout <= 0 {
		timeout = DefaultGhostTimeout
	}
	return GhostFilter{Timeout: timeout}
}

// IsActiveOccupant reports whether b currently occupies its bay
func (f GhostFilter) IsActiveOccupant(b *Booking, now time.Time) bool {
	if b.Status.IsOccupying() {
		return true
	}
	return b.Status == StatusPending && now.Sub(b.CreatedAt) < f.Timeout
}

// IsGhost reports whether b is an abandoned pending booking
func (f GhostFilter) IsGhost(b *Booking, now time.Time) bool {
	return b.Status == StatusPending && !f.IsActiveOccupant(b, now)
}

// Active returns the bookings that occupy their bay at now and the number of ghosts skipped
func (f GhostFilter) Active(bookings []*Booking, now time.Time) ([]*Booking, int) {
	active := make([]*Booking, 0, len(bookings))
	ghosts := 0

	for _, b := range bookings {
		if f.IsActiveOccupant(b, now) {
			active = append(active, b)
			continue
		}
		if f.IsGhost(b, now) {
			ghosts++
		}
	}

	return active, ghosts
}
