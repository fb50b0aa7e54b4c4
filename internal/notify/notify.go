// Package notify turns booking events into customer notifications. Messages
// are published on the notifications topic for the downstream SMS/email
// gateway; the delivery channels themselves are out of scope.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/connect237/busconnect/internal/kafka"
	"github.com/rs/zerolog"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// Notification is the payload published for the delivery gateway.
type Notification struct {
	UserID    string    `json:"user_id"`
	Reference string    `json:"booking_reference"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Sender struct {
	producer Producer
	topic    string
	log      zerolog.Logger
}

// NewSender publishes notifications via producer on topic. With a nil
// producer or empty topic the sender only logs, which keeps the worker
// usable without a notifications topic configured.
func NewSender(producer Producer, topic string, log zerolog.Logger) *Sender {
	return &Sender{producer: producer, topic: topic, log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	notification := Notification{
		UserID:    event.UserID,
		Reference: event.Reference,
		Message:   messageFor(event),
		CreatedAt: time.Now(),
	}

	if s.producer != nil && s.topic != "" {
		if err := s.producer.Publish(ctx, s.topic, event.Reference, notification); err != nil {
			return fmt.Errorf("failed to publish notification: %w", err)
		}
	}

	s.log.Info().
		Str("user_id", event.UserID).
		Str("reference", event.Reference).
		Str("type", event.Type).
		Msg("notification sent")
	return nil
}

func messageFor(event kafka.BookingEvent) string {
	route := event.Origin + " - " + event.Destination
	switch event.Type {
	case "booking_created":
		return fmt.Sprintf("Votre réservation %s (%s) est confirmée. Montant: %d FCFA.", event.Reference, route, event.TotalPrice)
	case "booking_cancelled":
		return fmt.Sprintf("Votre réservation %s (%s) a été annulée.", event.Reference, route)
	default:
		return fmt.Sprintf("Mise à jour de votre réservation %s: %s.", event.Reference, event.Status)
	}
}
