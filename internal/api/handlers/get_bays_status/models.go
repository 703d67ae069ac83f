package get_bays_status

import (
	"time"

	getBaysStatus "github.com/m04kA/Fairway-BookingService/internal/usecase/get_bays_status"
)

// BaysStatusResponse HTTP response model
// availableCount и serverTime дублируют snake_case поля для клиентов, читающих camelCase
type BaysStatusResponse struct {
	Bays                []Bay     `json:"bays"`
	AvailableCount      int       `json:"available_count"`
	AvailableCountCamel int       `json:"availableCount"`
	ServerTime          time.Time `json:"server_time"`
	ServerTimeCamel     time.Time `json:"serverTime"`
}

// Bay состояние бокса
type Bay struct {
	ID        int        `json:"id"`
	Status    string     `json:"status"`
	Label     string     `json:"label"`
	BookingID *string    `json:"booking_id,omitempty"`
	FreeAt    *time.Time `json:"free_at,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBaysStatus.Response) *BaysStatusResponse {
	out := &BaysStatusResponse{
		Bays:                make([]Bay, 0, len(resp.Bays)),
		AvailableCount:      resp.AvailableCount,
		AvailableCountCamel: resp.AvailableCount,
		ServerTime:          resp.ServerTime,
		ServerTimeCamel:     resp.ServerTime,
	}

	for _, b := range resp.Bays {
		bay := Bay{
			ID:     b.ID,
			Status: b.Status,
			Label:  b.Label,
			FreeAt: b.FreeAt,
		}
		if b.BookingID != nil {
			id := b.BookingID.String()
			bay.BookingID = &id
		}
		out.Bays = append(out.Bays, bay)
	}

	return out
}
