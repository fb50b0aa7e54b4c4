package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/connect237/busconnect/internal/pricing"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Pricing  pricing.Config `yaml:"pricing"`
	Routes   RoutesConfig   `yaml:"routes"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address     string   `yaml:"address" validate:"required"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" validate:"required_without=URL"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user" validate:"required_without=URL"`
	Password string `yaml:"password"`
	Name     string `yaml:"name" validate:"required_without=URL"`
	SSLMode  string `yaml:"ssl_mode"`
	// URL overrides the discrete fields when set (DATABASE_URL).
	URL string `yaml:"url"`
}

func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr" validate:"required"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers" validate:"min=1"`
	BookingEventsTopic string   `yaml:"booking_events_topic" validate:"required"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
	// Consumer group liveness tuning, in seconds.
	HeartbeatIntervalSeconds int `yaml:"heartbeat_interval_seconds" validate:"gt=0"`
	SessionTimeoutSeconds    int `yaml:"session_timeout_seconds" validate:"gt=0"`
}

type RoutesConfig struct {
	// DepartureSlots is the fixed daily timetable (HH:MM). Minor city pairs
	// only serve every other slot.
	DepartureSlots []string `yaml:"departure_slots"`
	// CruisingSpeedKmh is used to derive durations and tracking progress.
	CruisingSpeedKmh float64 `yaml:"cruising_speed_kmh" validate:"gt=0"`
	SearchCacheTTL   int     `yaml:"search_cache_ttl_seconds"`
}

type WorkerConfig struct {
	// LoyaltyPointsDivisor: one point per this many FCFA spent.
	LoyaltyPointsDivisor int `yaml:"loyalty_points_divisor" validate:"gt=0"`
}

// LoadConfig reads the YAML file, applies environment overrides
// (DATABASE_URL, REDIS_ADDR, KAFKA_BROKERS, CORS_ORIGINS) and validates the
// result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyEnv(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Kafka: KafkaConfig{
			HeartbeatIntervalSeconds: 3,
			SessionTimeoutSeconds:    30,
		},
		Pricing: pricing.DefaultConfig(),
		Routes: RoutesConfig{
			DepartureSlots:   []string{"05:30", "07:00", "09:00", "11:30", "14:00", "16:30", "19:00", "21:30"},
			CruisingSpeedKmh: 55,
			SearchCacheTTL:   120,
		},
		Worker: WorkerConfig{LoyaltyPointsDivisor: 100},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = strings.Split(v, ",")
	}
}
