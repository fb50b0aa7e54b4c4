package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/connect237/busconnect/config"
	"github.com/connect237/busconnect/internal/bootstrap"
	"github.com/connect237/busconnect/internal/cache"
	"github.com/connect237/busconnect/internal/catalog"
	"github.com/connect237/busconnect/internal/kafka"
	"github.com/connect237/busconnect/internal/pricing"
	"github.com/connect237/busconnect/internal/repository"
	"github.com/connect237/busconnect/internal/service/booking"
	"github.com/connect237/busconnect/internal/service/parcels"
	"github.com/connect237/busconnect/internal/service/routes"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "api").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Routes.SearchCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	cat := catalog.Default()
	quoter := pricing.NewQuoter(cat, cfg.Pricing)

	bookingRepo := repository.NewBookingRepository(pool)
	parcelRepo := repository.NewParcelRepository(pool)

	routeService := routes.NewRouteService(cat, quoter, redisCache, cfg.Routes.DepartureSlots, cfg.Routes.CruisingSpeedKmh, logger)
	bookingService := booking.NewBookingService(
		bookingRepo,
		cat,
		quoter,
		redisCache,
		producer,
		cfg.Kafka.BookingEventsTopic,
		cfg.Routes.CruisingSpeedKmh,
		logger,
	)
	parcelService := parcels.NewParcelService(parcelRepo, cat, quoter, redisCache)

	if err := bootstrap.Run(ctx, cfg, cat, routeService, bookingService, parcelService, logger); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
