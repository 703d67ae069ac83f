package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

const keyPrefix = "booking:slots:"

var (
	// ErrCacheUnavailable возвращается при ошибках обращения к Redis
	ErrCacheUnavailable = errors.New("slots.cache: redis unavailable")

	// ErrDecode возвращается, если значение в кэше повреждено
	ErrDecode = errors.New("slots.cache: failed to decode cached value")
)

// RedisClient подмножество команд go-redis, используемых кэшем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache кэш занятых слотов по дням
// Значение носит рекомендательный характер: допуск бронирования всегда читает БД
type Cache struct {
	client RedisClient
	ttl    time.Duration
}

type entry struct {
	PoolSize int                `json:"pool_size"`
	Slots    []types.TimeString `json:"slots"`
}

// NewCache создает кэш с заданным временем жизни записей
func NewCache(client RedisClient, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// NewRedisClient подключается к Redis и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrCacheUnavailable, addr, err)
	}

	return client, nil
}

// Get возвращает занятые слоты дня; ok=false при промахе
// Запись, посчитанная для другого числа боксов, считается промахом
func (c *Cache) Get(ctx context.Context, day time.Time, poolSize int) ([]types.TimeString, bool, error) {
	raw, err := c.client.Get(ctx, key(day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get: %v", ErrCacheUnavailable, err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if e.PoolSize != poolSize {
		return nil, false, nil
	}

	return e.Slots, true, nil
}

// Set сохраняет занятые слоты дня
func (c *Cache) Set(ctx context.Context, day time.Time, poolSize int, booked []types.TimeString) error {
	raw, err := json.Marshal(entry{PoolSize: poolSize, Slots: booked})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if err := c.client.Set(ctx, key(day), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate удаляет запись дня
func (c *Cache) Invalidate(ctx context.Context, day time.Time) error {
	if err := c.client.Del(ctx, key(day)).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCacheUnavailable, err)
	}
	return nil
}

func key(day time.Time) string {
	return keyPrefix + day.Format(domain.DateFormat)
}
