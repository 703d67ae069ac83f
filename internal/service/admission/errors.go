package admission

import "errors"

var (
	// ErrCapacityExceeded все боксы заняты на запрошенное окно
	ErrCapacityExceeded = errors.New("admission: capacity exceeded")

	// ErrInvalidWindow окно некорректно или выходит за часы работы
	ErrInvalidWindow = errors.New("admission: invalid window")

	// ErrInvalidPoolSize размер пула боксов меньше единицы
	ErrInvalidPoolSize = errors.New("admission: invalid pool size")

	// ErrStoreUnavailable хранилище не ответило или транзакция не прошла сериализацию
	ErrStoreUnavailable = errors.New("admission: store unavailable")

	// ErrNotificationFailed доставка уведомления не удалась; бронирование при этом не откатывается
	ErrNotificationFailed = errors.New("admission: notification failed")
)
