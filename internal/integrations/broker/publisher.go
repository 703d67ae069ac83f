package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/Fairway-BookingService/internal/domain"
)

// Publisher публикует события бронирований в очередь RabbitMQ
// Соединение держится открытым и переоткрывается после разрыва
type Publisher struct {
	url   string
	queue string
	log   Logger

	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed bool
}

// NewPublisher подключается к брокеру и объявляет durable очередь
func NewPublisher(url, queue string, log Logger) (*Publisher, error) {
	p := &Publisher{url: url, queue: queue, log: log}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connectLocked(); err != nil {
		return nil, err
	}

	return p, nil
}

// Notify публикует событие; реализует automation.Notifier
func (p *Publisher) Notify(ctx context.Context, event domain.BookingEvent) error {
	pub, err := toPublishing(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	if p.ch == nil || p.ch.IsClosed() {
		p.log.Warn("Broker: channel closed, reconnecting to queue=%s", p.queue)
		if err := p.connectLocked(); err != nil {
			return err
		}
	}

	if err := p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		return fmt.Errorf("%w: queue=%s: %v", ErrPublish, p.queue, err)
	}

	p.log.Info("Broker: published type=%s, booking=%s", event.Type, event.BookingID)
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.closeLocked()
	return nil
}

func (p *Publisher) connectLocked() error {
	p.closeLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%w: declare queue %s: %v", ErrConnect, p.queue, err)
	}

	p.conn = conn
	p.ch = ch
	return nil
}

func (p *Publisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func toMessage(event domain.BookingEvent) Message {
	return Message{
		Type:        string(event.Type),
		BookingID:   event.BookingID.String(),
		BayID:       event.BayID,
		PaymentID:   event.PaymentID,
		Amount:      event.Amount,
		TotalPrice:  event.TotalPrice,
		DepositPaid: event.DepositPaid,
		Outstanding: event.Outstanding,
		Status:      string(event.Status),
		GuestName:   event.GuestName,
		GuestEmail:  event.GuestEmail,
		GuestPhone:  event.GuestPhone,
		SlotStart:   event.SlotStart.UTC(),
		OccurredAt:  event.OccurredAt.UTC(),
	}
}

func toPublishing(event domain.BookingEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(toMessage(event))
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID.String() + ":" + string(event.Type),
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt.UTC(),
		Body:         body,
	}, nil
}
