package automation

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("automation client: internal error")

	// ErrDeliveryFailed возвращается, когда получатель не принял событие
	ErrDeliveryFailed = errors.New("automation client: delivery failed")
)
