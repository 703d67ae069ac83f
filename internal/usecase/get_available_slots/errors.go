package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при отсутствующей дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
