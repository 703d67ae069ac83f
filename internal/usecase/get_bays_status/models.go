package get_bays_status

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOccupied  = "occupied"
	StatusAvailable = "available"
)

// Response состояние всех боксов в текущий момент
type Response struct {
	Bays           []Bay
	AvailableCount int
	ServerTime     time.Time
}

// Bay состояние бокса
type Bay struct {
	ID        int
	Status    string     // occupied | available
	Label     string     // "Simulator N"
	BookingID *uuid.UUID // Текущее бронирование, если бокс занят
	FreeAt    *time.Time // Время освобождения, если бокс занят
}
