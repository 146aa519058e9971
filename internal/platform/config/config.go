package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string
	RedisAddr   string

	MarketplaceName     string
	MarketplaceFeeRate  int
	MarketplaceTreasury string
	ListingRentUnits    int64

	EnableWriterRoleEnforcement bool
	EnableListingOutboxRelay    bool
	EnableContentOutboxRelay    bool
	OutboxRelayIntervalMS       int
}

func Load() (Config, error) {
	// Optional .env for local development; real deployments set env directly.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "folio"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	marketplace := os.Getenv("MARKETPLACE_NAME")
	if marketplace == "" {
		marketplace = "folio-market"
	}

	treasury := os.Getenv("MARKETPLACE_TREASURY")
	if treasury == "" {
		treasury = "treasury"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),

		MarketplaceName:     marketplace,
		MarketplaceFeeRate:  envInt("MARKETPLACE_FEE_RATE", 2),
		MarketplaceTreasury: treasury,
		ListingRentUnits:    int64(envInt("LISTING_RENT_UNITS", 2039280)),

		EnableWriterRoleEnforcement: envBool("ENABLE_WRITER_ROLE_ENFORCEMENT", true),
		EnableListingOutboxRelay:    envBool("ENABLE_LISTING_OUTBOX_RELAY", true),
		EnableContentOutboxRelay:    envBool("ENABLE_CONTENT_OUTBOX_RELAY", true),
		OutboxRelayIntervalMS:       envInt("OUTBOX_RELAY_INTERVAL_MS", 500),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
