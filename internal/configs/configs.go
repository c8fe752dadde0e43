package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	KafkaBrokers     string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaOrdersTopic string `env:"KAFKA_ORDERS_TOPIC" envDefault:"orders"`
	KafkaGroupID     string `env:"KAFKA_GROUP_ID" envDefault:"order-svc"`
	KafkaDLQTopic    string `env:"KAFKA_DLQ_TOPIC" envDefault:"orders-dlq"`
	KafkaEventsTopic string `env:"KAFKA_EVENTS_TOPIC" envDefault:"order-events"`

	JsonStaticModelPath string `env:"JSON_STATIC_MODEL_PATH" envDefault:"web/model.json"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"orders"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	// EncryptionKey enables sealing of EncryptedFields at rest when set.
	EncryptionKey   string   `env:"ENCRYPTION_KEY"`
	EncryptedFields []string `env:"ENCRYPTED_FIELDS" envDefault:"customer_email,customer_phone" envSeparator:","`

	OrderEnforceTotals       bool   `env:"ORDER_ENFORCE_TOTALS" envDefault:"true"`
	OrderInitialStatusPolicy string `env:"ORDER_INITIAL_STATUS_POLICY" envDefault:"trust"`
	PaymentCurrency          string `env:"PAYMENT_CURRENCY" envDefault:"INR"`

	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	CacheShards int           `env:"CACHE_SHARDS" envDefault:"16"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	return splitList(c.KafkaBrokers)
}

// SealedFields returns EncryptedFields trimmed, without blanks.
func (c Config) SealedFields() []string {
	return splitList(strings.Join(c.EncryptedFields, ","))
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ConfigureLogger applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c Config) ConfigureLogger() error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(lvl)

	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("log format %q: expected text or json", c.LogFormat)
	}
	return nil
}
