package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	defaultHTTPPort                 = "8080"
	defaultKafkaOrderStatusTopic    = "order.status.changed"
	defaultCatalogCacheTTL          = 30 * time.Second
	defaultPlatformFee              = "5.00"
	defaultEstimatedDeliveryMinutes = 45
	defaultExpiryBatchSize          = 500
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaBrokers is empty when status notifications are disabled.
	KafkaBrokers          []string
	KafkaOrderStatusTopic string

	// RedisAddr is empty when the restaurant cache is disabled.
	RedisAddr       string
	CatalogCacheTTL time.Duration

	PlatformFee       kernel.Money
	Loyalty           services.LoyaltyPolicy
	EstimatedDelivery time.Duration
	ExpiryBatchSize   int
}

// ConfigFromEnv builds the configuration from lookup, typically os.Getenv.
// Unset keys fall back to defaults; malformed values are joined into the error.
func ConfigFromEnv(lookup func(key string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return fallback
	}

	var problems []error
	policy := services.DefaultLoyaltyPolicy()

	cfg := Config{
		HTTPPort:              get("HTTP_PORT", defaultHTTPPort),
		DBHost:                get("DB_HOST", "localhost"),
		DBPort:                get("DB_PORT", "5432"),
		DBUser:                get("DB_USER", "postgres"),
		DBPassword:            lookup("DB_PASSWORD"),
		DBName:                get("DB_NAME", "foodorder"),
		DBSslMode:             get("DB_SSLMODE", "disable"),
		KafkaBrokers:          splitList(lookup("KAFKA_BROKERS")),
		KafkaOrderStatusTopic: get("KAFKA_ORDER_STATUS_TOPIC", defaultKafkaOrderStatusTopic),
		RedisAddr:             strings.TrimSpace(lookup("REDIS_ADDR")),
		Loyalty:               policy,
		ExpiryBatchSize:       defaultExpiryBatchSize,
	}

	var err error
	if cfg.CatalogCacheTTL, err = time.ParseDuration(get("CATALOG_CACHE_TTL", defaultCatalogCacheTTL.String())); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("CATALOG_CACHE_TTL", err))
	}
	if cfg.PlatformFee, err = kernel.MoneyFromString(get("PLATFORM_FEE", defaultPlatformFee)); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("PLATFORM_FEE", err))
	}
	if rate := lookup("LOYALTY_EARN_RATE"); rate != "" {
		if cfg.Loyalty.EarnRate, err = decimal.NewFromString(rate); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOYALTY_EARN_RATE", err))
		}
	}
	if amount := lookup("LOYALTY_MIN_ORDER_AMOUNT"); amount != "" {
		if cfg.Loyalty.MinOrderAmount, err = kernel.MoneyFromString(amount); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOYALTY_MIN_ORDER_AMOUNT", err))
		}
	}
	if value := lookup("LOYALTY_COIN_VALUE"); value != "" {
		if cfg.Loyalty.CoinValue, err = kernel.MoneyFromString(value); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("LOYALTY_COIN_VALUE", err))
		}
	}
	if days := lookup("LOYALTY_EXPIRY_DAYS"); days != "" {
		n, convErr := positiveInt("LOYALTY_EXPIRY_DAYS", days)
		if convErr != nil {
			problems = append(problems, convErr)
		}
		cfg.Loyalty.ExpiryWindow = time.Duration(n) * 24 * time.Hour
	}

	minutes, err := positiveInt("ESTIMATED_DELIVERY_MINUTES",
		get("ESTIMATED_DELIVERY_MINUTES", strconv.Itoa(defaultEstimatedDeliveryMinutes)))
	if err != nil {
		problems = append(problems, err)
	}
	cfg.EstimatedDelivery = time.Duration(minutes) * time.Minute

	if len(problems) > 0 {
		return Config{}, errors.Join(problems...)
	}
	return cfg, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func positiveInt(key, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if n <= 0 {
		return 0, errs.NewValueIsOutOfRangeError(key, n, 1, "unbounded")
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
