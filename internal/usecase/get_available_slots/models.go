package get_available_slots

import (
	"time"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Date time.Time // Дата (без времени), интерпретируется в часовом поясе площадки
}

// Response модель ответа со слотами
type Response struct {
	Date        time.Time          // Дата, на которую запрашивались слоты
	Slots       []Slot             // Сетка слотов с числом свободных боксов
	BookedSlots []types.TimeString // Слоты, в которых заняты все боксы
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
	AvailableSpots  int              // Количество свободных боксов
	TotalSpots      int              // Общее количество боксов
}
