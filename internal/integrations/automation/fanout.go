package automation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
)

type namedNotifier struct {
	name     string
	notifier Notifier
}

// Fanout рассылает событие всем подключённым получателям
// Ошибка одного получателя не мешает доставке остальным
type Fanout struct {
	notifiers []namedNotifier
	failures  FailureRecorder
	log       Logger
}

// NewFanout создает пустую рассылку; failures может быть nil
func NewFanout(failures FailureRecorder, log Logger) *Fanout {
	return &Fanout{failures: failures, log: log}
}

// Add подключает получателя под именем (используется в логах и метриках)
func (f *Fanout) Add(name string, n Notifier) *Fanout {
	f.notifiers = append(f.notifiers, namedNotifier{name: name, notifier: n})
	return f
}

// Len возвращает количество получателей
func (f *Fanout) Len() int {
	return len(f.notifiers)
}

// Notify доставляет событие каждому получателю и объединяет ошибки
func (f *Fanout) Notify(ctx context.Context, event domain.BookingEvent) error {
	var errs []error

	for _, n := range f.notifiers {
		if err := n.notifier.Notify(ctx, event); err != nil {
			f.log.Warn("Automation: notifier=%s failed type=%s, booking=%s: %v", n.name, event.Type, event.BookingID, err)
			if f.failures != nil {
				f.failures.RecordNotificationFailure(n.name)
			}
			errs = append(errs, fmt.Errorf("%s: %w", n.name, err))
		}
	}

	return errors.Join(errs...)
}
