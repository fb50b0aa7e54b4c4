package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/connect237/busconnect/internal/kafka"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}

func createdEvent() kafka.BookingEvent {
	return kafka.BookingEvent{
		Type:        "booking_created",
		Reference:   "BC123456",
		UserID:      "user-1",
		Origin:      "Yaoundé",
		Destination: "Douala",
		TotalPrice:  20100,
	}
}

func TestSend_PublishesOnNotificationsTopic(t *testing.T) {
	producer := &MockProducer{}
	sender := NewSender(producer, "notifications", zerolog.Nop())

	producer.On("Publish", mock.Anything, "notifications", "BC123456", mock.MatchedBy(func(payload interface{}) bool {
		n, ok := payload.(Notification)
		return ok && n.UserID == "user-1" && n.Reference == "BC123456" && n.Message != ""
	})).Return(nil)

	require.NoError(t, sender.Send(context.Background(), createdEvent()))
	producer.AssertExpectations(t)
}

func TestSend_PublishFailureIsReturned(t *testing.T) {
	producer := &MockProducer{}
	sender := NewSender(producer, "notifications", zerolog.Nop())

	producer.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker down"))

	assert.Error(t, sender.Send(context.Background(), createdEvent()))
}

func TestSend_WithoutTopicOnlyLogs(t *testing.T) {
	producer := &MockProducer{}
	sender := NewSender(producer, "", zerolog.Nop())

	require.NoError(t, sender.Send(context.Background(), createdEvent()))
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageFor(t *testing.T) {
	created := messageFor(createdEvent())
	assert.Contains(t, created, "BC123456")
	assert.Contains(t, created, "20100")

	cancelled := createdEvent()
	cancelled.Type = "booking_cancelled"
	assert.Contains(t, messageFor(cancelled), "annulée")
}
