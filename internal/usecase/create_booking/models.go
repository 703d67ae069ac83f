package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования у стойки
type Request struct {
	Date               time.Time        // Дата бронирования (без времени)
	StartTime          types.TimeString // Время начала (например, "10:00")
	DurationHours      float64          // Длительность в часах
	PlayerCount        int              // Количество игроков (по умолчанию 1)
	SessionType        string           // Тип сессии (по умолчанию "quick")
	FamousCourseOption *string          // Вариант famous course (опционально)
	GuestName          *string          // Имя гостя (по умолчанию "Walk-In Guest")
	GuestEmail         *string
	GuestPhone         *string
	TotalPrice         float64 // Итоговая цена
	PaymentStatus      string  // "completed" если оплачено на месте
	SpecialRequests    *string // Пожелания (опционально)
}

// Response модель ответа с допущенным бронированием
type Response struct {
	BookingID   uuid.UUID // ID созданного бронирования
	AssignedBay int       // Назначенный бокс
	Status      string    // Статус бронирования
	CreatedAt   time.Time // Время создания
}
