package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsumer_DefaultsIntervals(t *testing.T) {
	consumer := NewConsumer(ConsumerConfig{
		Brokers: []string{"localhost:9092"},
		GroupID: "busconnect-worker",
		Topic:   "booking-events",
	}, zerolog.Nop())
	assert.NotNil(t, consumer)
	assert.NoError(t, consumer.Close())
}

func TestNewConsumer_ConfiguredIntervals(t *testing.T) {
	consumer := NewConsumer(ConsumerConfig{
		Brokers:           []string{"localhost:9092"},
		GroupID:           "busconnect-worker",
		Topic:             "booking-events",
		HeartbeatInterval: 5 * time.Second,
		SessionTimeout:    45 * time.Second,
	}, zerolog.Nop())
	assert.NotNil(t, consumer)
	assert.NoError(t, consumer.Close())
}

func TestDecodeEvent(t *testing.T) {
	payload, err := json.Marshal(BookingEvent{
		Type:        "booking_created",
		Reference:   "BC123456",
		UserID:      "user-1",
		Origin:      "Yaoundé",
		Destination: "Douala",
		TotalPrice:  20100,
	})
	require.NoError(t, err)

	event, err := decodeEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, "booking_created", event.Type)
	assert.Equal(t, "BC123456", event.Reference)
	assert.Equal(t, 20100, event.TotalPrice)
}

func TestDecodeEvent_Rejects(t *testing.T) {
	_, err := decodeEvent([]byte("{not json"))
	assert.Error(t, err)

	_, err = decodeEvent([]byte(`{"booking_reference":"BC123456"}`))
	assert.Error(t, err, "missing type")
}
