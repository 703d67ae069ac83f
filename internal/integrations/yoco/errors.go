package yoco

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("yoco client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("yoco client: invalid response")

	// ErrUnauthorized возвращается, когда шлюз отклонил секретный ключ
	ErrUnauthorized = errors.New("yoco client: unauthorized")

	// ErrInvalidRequest возвращается, когда шлюз отклонил параметры checkout
	ErrInvalidRequest = errors.New("yoco client: invalid checkout request")

	// ErrInvalidSignature возвращается при неверной подписи webhook
	ErrInvalidSignature = errors.New("yoco webhook: invalid signature")
)
