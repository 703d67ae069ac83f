package broker

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к RabbitMQ
	ErrConnect = errors.New("broker: failed to connect")

	// ErrPublish возвращается, когда сообщение не было опубликовано
	ErrPublish = errors.New("broker: failed to publish")

	// ErrClosed возвращается при публикации через закрытый publisher
	ErrClosed = errors.New("broker: publisher closed")
)
