package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/meeting-room-booking/internal/model"
)

const (
	queueConfirmed = "booking.confirmed"
	queueCancelled = "booking.cancelled"
)

// Publisher delivers booking events to RabbitMQ over a shared connection.
// A nil *Publisher is valid and drops everything silently, so the service
// runs unchanged without a broker. Publish errors are logged, never
// propagated: events must not interrupt the request flow.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher dials the broker and declares the durable booking queues.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	for _, name := range []string{queueConfirmed, queueCancelled} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, err
		}
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// BookingConfirmed publishes a BookingConfirmedEvent for a new booking.
func (p *Publisher) BookingConfirmed(ctx context.Context, b model.Booking, room model.Room) {
	p.publish(ctx, queueConfirmed, BookingConfirmedEvent{
		EventID:     uuid.NewString(),
		BookingID:   b.ID,
		RoomID:      b.RoomID,
		RoomName:    room.Name,
		UserName:    b.UserName,
		StartsAt:    b.StartTime.UTC().Format(time.RFC3339),
		EndsAt:      b.EndTime.UTC().Format(time.RFC3339),
		TotalPrice:  b.TotalPrice,
		ConfirmedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// BookingCancelled publishes a BookingCancelledEvent for a cancelled booking.
func (p *Publisher) BookingCancelled(ctx context.Context, b model.Booking) {
	p.publish(ctx, queueCancelled, BookingCancelledEvent{
		EventID:     uuid.NewString(),
		BookingID:   b.ID,
		RoomID:      b.RoomID,
		UserName:    b.UserName,
		StartsAt:    b.StartTime.UTC().Format(time.RFC3339),
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *Publisher) publish(ctx context.Context, queueName string, event any) {
	if p == nil || p.ch == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal %s event failed: %v", queueName, err)
		return
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish to %s failed: %v", queueName, err)
	}
}
