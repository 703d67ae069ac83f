package get_venue_info

import (
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/config"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// VenueResponse публичные параметры площадки для мастера бронирования
type VenueResponse struct {
	Name                   string     `json:"name"`
	Bays                   int        `json:"bays"`
	UTCOffsetMinutes       int        `json:"utc_offset_minutes"`
	SlotGranularityMinutes int        `json:"slot_granularity_minutes"`
	DepositPercent         int        `json:"deposit_percent"`
	Currency               string     `json:"currency"`
	Hours                  []DayHours `json:"hours"`
}

// DayHours часы работы на день недели
type DayHours struct {
	Day    string            `json:"day"`
	Open   *types.TimeString `json:"open,omitempty"`
	Close  *types.TimeString `json:"close,omitempty"`
	Closed bool              `json:"closed"`
}

// FromConfig формирует ответ из конфигурации сервиса
func FromConfig(cfg *config.Config) *VenueResponse {
	resp := &VenueResponse{
		Name:                   cfg.Venue.Name,
		Bays:                   cfg.Venue.Bays,
		UTCOffsetMinutes:       cfg.Venue.UTCOffsetMinutes,
		SlotGranularityMinutes: cfg.Venue.SlotGranularityMinutes,
		DepositPercent:         cfg.Payment.DepositPercent,
		Currency:               cfg.Payment.Currency,
		Hours:                  make([]DayHours, 0, 7),
	}

	// неделя с понедельника
	for i := 1; i <= 7; i++ {
		day := time.Weekday(i % 7)
		h := cfg.Venue.Hours.For(day)
		entry := DayHours{Day: day.String(), Closed: h.Closed}
		if !h.Closed {
			open, closeAt := h.Open, h.Close
			entry.Open = &open
			entry.Close = &closeAt
		}
		resp.Hours = append(resp.Hours, entry)
	}

	return resp
}
