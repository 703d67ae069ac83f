package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrCannotConfirm возвращается для отменённого бронирования
	ErrCannotConfirm = errors.New("confirm_payment: booking cannot be confirmed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInvalidSignature возвращается при неверной подписи webhook
	ErrInvalidSignature = errors.New("confirm_payment: invalid webhook signature")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
