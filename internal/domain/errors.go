package domain

import "errors"

var (
	// ErrInvalidWindow некорректная дата, время начала или длительность
	ErrInvalidWindow = errors.New("domain: invalid time window")

	// ErrCapacityExceeded все боксы заняты на запрошенное окно
	ErrCapacityExceeded = errors.New("domain: capacity exceeded")

	// ErrInvalidPoolSize размер пула боксов должен быть положительным
	ErrInvalidPoolSize = errors.New("domain: invalid pool size")
)
