package initialize_payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// Settings параметры оплаты
type Settings struct {
	Currency        string // Валюта checkout (например, "ZAR")
	SiteURL         string // Адрес сайта для возврата со шлюза
	DepositPercent  int    // Процент предоплаты для сессий с депозитом
	AdminBypassCode string // Код администратора: оплата на месте без шлюза
}

// Request модель запроса на инициализацию оплаты
type Request struct {
	Date               time.Time        // Дата бронирования (без времени)
	StartTime          types.TimeString // Время начала (например, "10:00")
	DurationHours      float64          // Длительность в часах
	PlayerCount        int              // Количество игроков
	SessionType        string           // Тип сессии
	FamousCourseOption *string          // Вариант famous course (опционально)
	BasePrice          float64          // Цена без скидки
	TotalPrice         float64          // Цена, рассчитанная клиентом
	GuestName          *string
	GuestEmail         *string
	GuestPhone         *string
	AcceptWhatsapp     bool
	EnterCompetition   bool
	CouponCode         *string // Код купона (опционально)
	SpecialRequests    *string
	PayFullAmount      bool // Оплатить полную сумму вместо депозита
}

// Response модель ответа
// Для бесплатного бронирования RedirectURL пустой
type Response struct {
	BookingID   uuid.UUID
	BayID       int
	FreeBooking bool
	Message     string
	RedirectURL string
	AmountDue   float64
	Outstanding float64
}
