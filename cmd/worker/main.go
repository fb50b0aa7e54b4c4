package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/connect237/busconnect/config"
	"github.com/connect237/busconnect/internal/kafka"
	"github.com/connect237/busconnect/internal/notify"
	"github.com/connect237/busconnect/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// The worker consumes booking events and runs the secondary effects: loyalty
// point awards and customer notifications. Both are best-effort, a failure is
// logged and the event is not replayed.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "worker").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	users := repository.NewUserRepository(pool)

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	sender := notify.NewSender(producer, cfg.Kafka.NotificationsTopic, logger)

	consumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers:           cfg.Kafka.Brokers,
		GroupID:           cfg.Kafka.GroupID,
		Topic:             cfg.Kafka.BookingEventsTopic,
		HeartbeatInterval: time.Duration(cfg.Kafka.HeartbeatIntervalSeconds) * time.Second,
		SessionTimeout:    time.Duration(cfg.Kafka.SessionTimeoutSeconds) * time.Second,
	}, logger)
	defer consumer.Close()

	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
		if event.Type == "booking_created" {
			points := event.TotalPrice / cfg.Worker.LoyaltyPointsDivisor
			if points > 0 {
				if err := users.AddLoyaltyPoints(ctx, event.UserID, points); err != nil {
					logger.Warn().Err(err).Str("user_id", event.UserID).Msg("loyalty award failed")
				}
			}
		}

		if err := sender.Send(ctx, event); err != nil {
			logger.Warn().Err(err).Str("reference", event.Reference).Msg("notification failed")
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("consumer stopped")
	}
}
