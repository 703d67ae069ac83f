package get_available_slots

import (
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/Fairway-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
// bookedSlots дублирует booked_slots для клиентов, читающих camelCase
type AvailableSlotsResponse struct {
	Date             string          `json:"date"`
	BookedSlots      []string        `json:"booked_slots"`
	BookedSlotsCamel []string        `json:"bookedSlots"`
	Slots            []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	AvailableSpots  int    `json:"available_spots"`
	TotalSpots      int    `json:"total_spots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			AvailableSpots:  slot.AvailableSpots,
			TotalSpots:      slot.TotalSpots,
		}
	}

	booked := make([]string, len(resp.BookedSlots))
	for i, slot := range resp.BookedSlots {
		booked[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		BookedSlots:      booked,
		BookedSlotsCamel: booked,
		Slots:            slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}
