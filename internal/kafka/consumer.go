package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

type ConsumerConfig struct {
	Brokers           []string
	GroupID           string
	Topic             string
	HeartbeatInterval time.Duration
	SessionTimeout    time.Duration
}

// EventHandler processes one decoded booking event. Returning an error stops
// the consumer.
type EventHandler func(ctx context.Context, event BookingEvent) error

// Consumer reads the booking events topic and hands decoded events to a
// handler. Decoding happens here so the worker never touches raw messages.
type Consumer struct {
	reader *kafka.Reader
	log    zerolog.Logger
}

func NewConsumer(cfg ConsumerConfig, log zerolog.Logger) *Consumer {
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 3 * time.Second
	}
	if cfg.SessionTimeout <= 0 {
		cfg.SessionTimeout = 30 * time.Second
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			GroupID:           cfg.GroupID,
			Topic:             cfg.Topic,
			HeartbeatInterval: cfg.HeartbeatInterval,
			SessionTimeout:    cfg.SessionTimeout,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks until the context is canceled or the handler fails. A
// payload that does not decode is logged and skipped: it would fail the same
// way on every redelivery.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := decodeEvent(msg.Value)
		if err != nil {
			c.log.Warn().Err(err).
				Int64("offset", msg.Offset).
				Str("key", string(msg.Key)).
				Msg("skipping undecodable booking event")
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeEvent(data []byte) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return BookingEvent{}, fmt.Errorf("failed to decode booking event: %w", err)
	}
	if event.Type == "" {
		return BookingEvent{}, fmt.Errorf("booking event without a type")
	}
	return event, nil
}
