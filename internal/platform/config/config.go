package config

import (
	"os"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr          string
	PostgresURL   string
	RedisURL      string
	JWTSigningKey string
	TokenTTL      time.Duration
}

// CatalogCacheTTL bounds how long brand/model/city reference rows may be
// served from the Redis cache before the store is consulted again.
var CatalogCacheTTL = 10 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("AUTOBOX_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          addr,
		PostgresURL:   os.Getenv("AUTOBOX_POSTGRES_URL"),
		RedisURL:      os.Getenv("AUTOBOX_REDIS_URL"),
		JWTSigningKey: jwtSigningKey,
		TokenTTL:      24 * time.Hour,
	}
}
