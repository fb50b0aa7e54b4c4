package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

const validYAML = `
http:
  address: ":8080"
  cors_origins: ["*"]
database:
  host: localhost
  port: 5432
  user: busconnect
  password: secret
  name: busconnect
  ssl_mode: disable
redis:
  addr: localhost:6379
kafka:
  brokers: ["localhost:9092"]
  booking_events_topic: booking-events
  group_id: busconnect-worker
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)

	// Unspecified sections keep their defaults.
	assert.Equal(t, 3, cfg.Kafka.HeartbeatIntervalSeconds)
	assert.Equal(t, 30, cfg.Kafka.SessionTimeoutSeconds)
	assert.Equal(t, 50, cfg.Pricing.PerKmRate)
	assert.Equal(t, 3000, cfg.Pricing.FloorPrice)
	assert.Len(t, cfg.Routes.DepartureSlots, 8)
	assert.Equal(t, 55.0, cfg.Routes.CruisingSpeedKmh)
	assert.Equal(t, 100, cfg.Worker.LoyaltyPointsDivisor)
}

func TestLoadConfig_DSN(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=busconnect password=secret dbname=busconnect sslmode=disable",
		cfg.Database.DSN())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/busconnect")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")

	cfg, err := LoadConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/busconnect", cfg.Database.DSN())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"kafka1:9092", "kafka2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadConfig_URLAloneSatisfiesDatabase(t *testing.T) {
	yaml := `
http:
  address: ":8080"
database:
  url: postgres://u:p@db:5432/busconnect
redis:
  addr: localhost:6379
kafka:
  brokers: ["localhost:9092"]
  booking_events_topic: booking-events
`
	cfg, err := LoadConfig(writeConfig(t, yaml))
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/busconnect", cfg.Database.DSN())
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	yaml := `
http:
  address: ":8080"
database:
  host: localhost
  user: busconnect
  name: busconnect
kafka:
  brokers: ["localhost:9092"]
  booking_events_topic: booking-events
`
	_, err := LoadConfig(writeConfig(t, yaml))
	assert.Error(t, err, "redis addr is required")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
