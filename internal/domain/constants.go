package domain

import (
	"slices"
	"time"
)

// Default configuration values
const (
	DefaultBayCount               = 3
	DefaultGhostTimeout           = 20 * time.Minute
	DefaultSlotGranularityMinutes = 30
	DefaultDepositPercent         = 40
	DefaultUTCOffsetMinutes       = 120 // SAST
)

// Business validation constants
const (
	MaxDurationHours            = 24
	MaxPlayerCount              = 8
	MaxGuestNameLength          = 200
	MaxSpecialRequestsLength    = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы, которые занимают бокс без ограничения по времени
var OccupyingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPaidInstore,
	StatusCompleted,
}

// NonCancelledStatuses статусы, возвращаемые хранилищем при выборке дня
// Фильтрация "призрачных" бронирований выполняется в движке, а не в хранилище
var NonCancelledStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusPaidInstore,
	StatusCompleted,
}

// IsOccupying true для статусов из OccupyingStatuses
func (s BookingStatus) IsOccupying() bool {
	return slices.Contains(OccupyingStatuses, s)
}

// StatusValues строковые значения статусов для фильтров хранилища
func StatusValues(statuses []BookingStatus) []string {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}
