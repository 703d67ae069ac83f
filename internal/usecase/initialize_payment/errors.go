package initialize_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("initialize_payment: invalid input data")

	// ErrSlotNotAvailable возвращается, когда на выбранное время заняты все боксы
	ErrSlotNotAvailable = errors.New("initialize_payment: all bays are full for this time")

	// ErrInvalidTimeSlot возвращается, когда окно некорректно или выходит за часы работы
	ErrInvalidTimeSlot = errors.New("initialize_payment: invalid time slot")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно или транзакция не прошла
	ErrStoreUnavailable = errors.New("initialize_payment: store unavailable")

	// ErrPaymentGateway возвращается, когда шлюз не создал checkout
	// Бронирование при этом остаётся в pending и освобождается по таймауту
	ErrPaymentGateway = errors.New("initialize_payment: payment initialization failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("initialize_payment: internal error")
)
