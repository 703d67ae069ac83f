package check_availability

import (
	"time"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// Request модель запроса на проверку окна
type Request struct {
	Date          time.Time        // Дата (без времени)
	StartTime     types.TimeString // Время начала
	DurationHours float64          // Длительность в часах
}

// Response модель ответа
// Результат рекомендательный: бокс не резервируется
type Response struct {
	Available   bool
	Conflicting int
	Capacity    int
}
