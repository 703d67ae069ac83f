package admission

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
)

// Settings параметры площадки, которыми пользуется движок
type Settings struct {
	Location               *time.Location
	PoolSize               int
	GhostTimeout           time.Duration
	SlotGranularityMinutes int
	Schedule               domain.WeeklySchedule
}

// Admission результат успешного допуска
type Admission struct {
	BookingID uuid.UUID
	BayID     int
	Booking   *domain.Booking
}

// Occupancy результат рекомендательной проверки окна
type Occupancy struct {
	Conflicting int
	Capacity    int
}

// Available true, если хотя бы один бокс свободен
func (o *Occupancy) Available() bool {
	return o.Conflicting < o.Capacity
}

// BayState состояние бокса в текущий момент
type BayState struct {
	ID        int
	Occupied  bool
	BookingID *uuid.UUID
	FreeAt    *time.Time
}

// Board табло боксов
type Board struct {
	Bays       []BayState
	ServerTime time.Time
}

// AvailableCount число свободных боксов
func (b *Board) AvailableCount() int {
	count := 0
	for _, bay := range b.Bays {
		if !bay.Occupied {
			count++
		}
	}
	return count
}
