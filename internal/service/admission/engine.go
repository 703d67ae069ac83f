package admission

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
	"github.com/m04kA/Fairway-BookingService/pkg/metrics"
	"github.com/m04kA/Fairway-BookingService/pkg/txmanager"
	"github.com/m04kA/Fairway-BookingService/pkg/types"
)

// Engine движок допуска бронирований к боксам
//
// Единственная изменяющая операция - Admit. Она выполняется в транзакции READ COMMITTED,
// первым запросом берёт advisory lock на день, поэтому проверка свободного бокса
// и вставка записи не разделяются конкурентной записью.
// Снимок дня читается отдельным запросом после получения блокировки и видит все ранее
// зафиксированные допуски этого дня.
type Engine struct {
	repo      BookingRepository
	txManager TransactionManager
	cache     SlotsCache
	metrics   Metrics
	clock     TimeProvider
	logger    Logger

	loc         *time.Location
	poolSize    int
	granularity int
	schedule    domain.WeeklySchedule
	ghosts      domain.GhostFilter
}

// NewEngine создает движок допуска
// cache и metrics могут быть nil
func NewEngine(
	repo BookingRepository,
	txManager TransactionManager,
	cache SlotsCache,
	m Metrics,
	clock TimeProvider,
	logger Logger,
	settings Settings,
) *Engine {
	if clock == nil {
		clock = RealTimeProvider{}
	}

	loc := settings.Location
	if loc == nil {
		loc = time.FixedZone("SAST", domain.DefaultUTCOffsetMinutes*60)
	}
	poolSize := settings.PoolSize
	if poolSize < 1 {
		poolSize = domain.DefaultBayCount
	}
	granularity := settings.SlotGranularityMinutes
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}

	return &Engine{
		repo:        repo,
		txManager:   txManager,
		cache:       cache,
		metrics:     m,
		clock:       clock,
		logger:      logger,
		loc:         loc,
		poolSize:    poolSize,
		granularity: granularity,
		schedule:    settings.Schedule,
		ghosts:      domain.NewGhostFilter(settings.GhostTimeout),
	}
}

// PoolSize размер пула боксов площадки по умолчанию
func (e *Engine) PoolSize() int {
	return e.poolSize
}

// Location часовой пояс площадки
func (e *Engine) Location() *time.Location {
	return e.loc
}

// GranularityMinutes шаг сетки слотов
func (e *Engine) GranularityMinutes() int {
	return e.granularity
}

// GetBookedSlots возвращает слоты дня, в которых заняты все боксы
// Результат рекомендательный и может устареть к моменту бронирования
func (e *Engine) GetBookedSlots(ctx context.Context, day time.Time) ([]types.TimeString, error) {
	day = e.civilDay(day)
	dateLabel := day.Format(domain.DateFormat)

	// 1. Пробуем кэш
	if e.cache != nil {
		booked, ok, err := e.cache.Get(ctx, day, e.poolSize)
		if err != nil {
			e.logger.Warn("GetBookedSlots: cache read failed for date=%s: %v", dateLabel, err)
		} else if ok {
			return booked, nil
		}
	}

	// 2. Читаем снимок дня
	bookings, err := e.repo.GetByDay(ctx, domain.DayBookingsFilter{Date: day})
	if err != nil {
		e.logger.Error("GetBookedSlots: failed to read bookings for date=%s: %v", dateLabel, err)
		return nil, fmt.Errorf("%w: GetBookedSlots - read day: %v", ErrStoreUnavailable, err)
	}

	// 3. Отбрасываем брошенные pending
	active := e.activeOccupants(bookings)

	// 4. Считаем занятые слоты
	booked, err := domain.BookedSlots(day, e.schedule.For(day), e.granularity, e.poolSize, active, e.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots: %v", ErrInvalidWindow, err)
	}

	// 5. Кладём в кэш
	if e.cache != nil {
		if err := e.cache.Set(ctx, day, e.poolSize, booked); err != nil {
			e.logger.Warn("GetBookedSlots: cache write failed for date=%s: %v", dateLabel, err)
		}
	}

	e.logger.Info("GetBookedSlots: date=%s, bookings=%d, active=%d, booked=%d",
		dateLabel, len(bookings), len(active), len(booked))
	return booked, nil
}

// SlotGrid возвращает занятость каждого слота дня по активным бронированиям
func (e *Engine) SlotGrid(ctx context.Context, day time.Time) ([]domain.SlotOccupancy, error) {
	day = e.civilDay(day)

	bookings, err := e.repo.GetByDay(ctx, domain.DayBookingsFilter{Date: day})
	if err != nil {
		e.logger.Error("SlotGrid: failed to read bookings for date=%s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: SlotGrid - read day: %v", ErrStoreUnavailable, err)
	}

	grid, err := domain.SlotOccupancies(day, e.schedule.For(day), e.granularity, e.poolSize, e.activeOccupants(bookings), e.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: SlotGrid: %v", ErrInvalidWindow, err)
	}
	return grid, nil
}

// CheckWindow считает активные бронирования, пересекающиеся с окном
func (e *Engine) CheckWindow(ctx context.Context, window domain.Window, poolSize int) (*Occupancy, error) {
	if poolSize < 1 {
		return nil, ErrInvalidPoolSize
	}
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	day := e.civilDay(window.Start.In(e.loc))
	bookings, err := e.repo.GetByDay(ctx, domain.DayBookingsFilter{Date: day})
	if err != nil {
		e.logger.Error("CheckWindow: failed to read bookings for date=%s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: CheckWindow - read day: %v", ErrStoreUnavailable, err)
	}

	active := e.activeOccupants(bookings)

	return &Occupancy{
		Conflicting: domain.CountOverlapping(window, active),
		Capacity:    poolSize,
	}, nil
}

// Admit проверяет окно, назначает наименьший свободный бокс и сохраняет бронирование
// Если все боксы заняты, возвращает ErrCapacityExceeded и ничего не пишет
func (e *Engine) Admit(ctx context.Context, window domain.Window, poolSize int, draft domain.BookingDraft) (*Admission, error) {
	// 1. Проверяем входные данные
	if poolSize < 1 {
		e.record(metrics.OutcomeInvalidWindow)
		return nil, ErrInvalidPoolSize
	}
	if err := validateWindow(window); err != nil {
		e.record(metrics.OutcomeInvalidWindow)
		return nil, err
	}

	day := e.civilDay(window.Start.In(e.loc))
	dateLabel := day.Format(domain.DateFormat)

	if !e.schedule.For(day).Covers(day, window, e.loc) {
		e.record(metrics.OutcomeInvalidWindow)
		e.logger.Warn("Admit: window %s-%s outside operating hours on date=%s",
			window.StartLabel(e.loc), window.EndLabel(e.loc), dateLabel)
		return nil, fmt.Errorf("%w: outside operating hours", ErrInvalidWindow)
	}

	// 2. Проверка и вставка в одной транзакции под блокировкой дня
	var created *domain.Booking
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		if err := e.repo.LockDay(ctx, day); err != nil {
			return fmt.Errorf("%w: lock day: %w", ErrStoreUnavailable, err)
		}

		bookings, err := e.repo.GetByDay(ctx, domain.DayBookingsFilter{Date: day})
		if err != nil {
			return fmt.Errorf("%w: read day: %w", ErrStoreUnavailable, err)
		}

		now := e.clock.Now()
		active := e.activeOccupants(bookings)

		bayID, err := domain.AssignBay(window, poolSize, active)
		if err != nil {
			if errors.Is(err, domain.ErrCapacityExceeded) {
				return fmt.Errorf("%w: %d of %d bays taken", ErrCapacityExceeded, len(domain.TakenBays(window, active)), poolSize)
			}
			return fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}

		created, err = e.repo.Create(ctx, draft.ToBooking(window, bayID, e.loc, now))
		if err != nil {
			return fmt.Errorf("%w: insert: %w", ErrStoreUnavailable, err)
		}
		return nil
	})

	// 3. Разбираем результат
	if err != nil {
		switch {
		case errors.Is(err, ErrCapacityExceeded):
			e.record(metrics.OutcomeCapacityExceeded)
			e.logger.Warn("Admit: no free bay for %s %s-%s: %v",
				dateLabel, window.StartLabel(e.loc), window.EndLabel(e.loc), err)
			return nil, err
		case errors.Is(err, ErrInvalidWindow):
			e.record(metrics.OutcomeInvalidWindow)
			return nil, err
		case txmanager.IsSerializationFailure(err):
			e.record(metrics.OutcomeStoreError)
			e.logger.Warn("Admit: serialization conflict on date=%s: %v", dateLabel, err)
			if errors.Is(err, ErrStoreUnavailable) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: Admit - serialization conflict: %v", ErrStoreUnavailable, err)
		case errors.Is(err, ErrStoreUnavailable):
			e.record(metrics.OutcomeStoreError)
			e.logger.Error("Admit: store error on date=%s: %v", dateLabel, err)
			return nil, err
		default:
			e.record(metrics.OutcomeStoreError)
			e.logger.Error("Admit: transaction failed on date=%s: %v", dateLabel, err)
			return nil, fmt.Errorf("%w: Admit - transaction: %v", ErrStoreUnavailable, err)
		}
	}

	e.record(metrics.OutcomeAdmitted)

	// 4. Кэш дня больше не актуален
	e.ForgetDay(ctx, day)

	e.logger.Info("Admit: booking id=%s admitted to bay=%d, date=%s, window=%s-%s, status=%s",
		created.ID, created.BayID, dateLabel, created.StartTime, created.EndTime, created.Status)

	return &Admission{
		BookingID: created.ID,
		BayID:     created.BayID,
		Booking:   created,
	}, nil
}

// LiveBays возвращает занятость боксов в текущий момент
func (e *Engine) LiveBays(ctx context.Context) (*Board, error) {
	now := e.clock.Now()

	bookings, err := e.repo.GetLive(ctx, now)
	if err != nil {
		e.logger.Error("LiveBays: failed to read live bookings: %v", err)
		return nil, fmt.Errorf("%w: LiveBays - read live: %v", ErrStoreUnavailable, err)
	}

	active := e.activeOccupants(bookings)
	sort.Slice(active, func(i, j int) bool {
		return active[i].SlotStart.Before(active[j].SlotStart)
	})

	byBay := make(map[int]*domain.Booking, len(active))
	for _, b := range active {
		if _, taken := byBay[b.BayID]; !taken {
			byBay[b.BayID] = b
		}
	}

	board := &Board{
		Bays:       make([]BayState, 0, e.poolSize),
		ServerTime: now.In(e.loc),
	}
	for id := 1; id <= e.poolSize; id++ {
		state := BayState{ID: id}
		if b, ok := byBay[id]; ok {
			bookingID := b.ID
			freeAt := b.SlotEnd.In(e.loc)
			state.Occupied = true
			state.BookingID = &bookingID
			state.FreeAt = &freeAt
		}
		board.Bays = append(board.Bays, state)
	}

	return board, nil
}

// ForgetDay сбрасывает кэш занятых слотов дня
// Ошибка кэша только логируется
func (e *Engine) ForgetDay(ctx context.Context, day time.Time) {
	if e.cache == nil {
		return
	}

	day = e.civilDay(day)
	if err := e.cache.Invalidate(ctx, day); err != nil {
		e.logger.Warn("ForgetDay: cache invalidate failed for date=%s: %v", day.Format(domain.DateFormat), err)
	}
}

func (e *Engine) activeOccupants(bookings []*domain.Booking) []*domain.Booking {
	active, ghosts := e.ghosts.Active(bookings, e.clock.Now())
	if ghosts > 0 && e.metrics != nil {
		e.metrics.AddGhostsIgnored(ghosts)
	}
	return active
}

func (e *Engine) record(outcome string) {
	if e.metrics != nil {
		e.metrics.RecordAdmission(outcome)
	}
}

// civilDay полночь календарной даты day в часовом поясе площадки
func (e *Engine) civilDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.loc)
}

func validateWindow(window domain.Window) error {
	if window.IsZero() || !window.End.After(window.Start) {
		return fmt.Errorf("%w: empty window", ErrInvalidWindow)
	}
	if window.Duration() > domain.MaxDurationHours*time.Hour {
		return fmt.Errorf("%w: window longer than %d hours", ErrInvalidWindow, domain.MaxDurationHours)
	}
	return nil
}
