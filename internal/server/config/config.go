// Package config handles configuration for the server component: defaults,
// an optional JSON file, environment variables and command-line flags, applied
// in that order.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the user service.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - Workers / MaxQueued: size of the request worker pool and how many
//     requests may wait for a worker before the server reports overload.
//   - RequestTimeout: deadline applied to every request (0 disables it).
//   - PasswordHasher / BcryptCost: password digest ("sha256", "bcrypt" or "argon2id").
//   - ExposePasswordHash: include the stored hash in responses.
//   - IDAllocator: "memory" or "redis"; Redis* configure the latter.
//   - LogBackend / LogLevel / LogFile: logger selection.
type Config struct {
	EndpointAddrGRPC   string        `envconfig:"ENDPOINT_ADDR_GRPC"`
	Workers            int           `envconfig:"WORKERS"`
	MaxQueued          int           `envconfig:"MAX_QUEUED"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT"`
	PasswordHasher     string        `envconfig:"PASSWORD_HASHER"`
	BcryptCost         int           `envconfig:"BCRYPT_COST"`
	ExposePasswordHash bool          `envconfig:"EXPOSE_PASSWORD_HASH"`
	IDAllocator        string        `envconfig:"ID_ALLOCATOR"`
	RedisAddr          string        `envconfig:"REDIS_ADDR"`
	RedisPassword      string        `envconfig:"REDIS_PASSWORD"`
	RedisIDKey         string        `envconfig:"REDIS_ID_KEY"`
	LogBackend         string        `envconfig:"LOG_BACKEND"`
	LogLevel           string        `envconfig:"LOG_LEVEL"`
	LogFile            string        `envconfig:"LOG_FILE"`
}

const (
	AllocatorMemory = "memory"
	AllocatorRedis  = "redis"
)

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.Workers = 10
	c.MaxQueued = 100
	c.RequestTimeout = 5 * time.Second
	c.PasswordHasher = "sha256"
	c.BcryptCost = 10
	c.ExposePasswordHash = false
	c.IDAllocator = AllocatorMemory
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisIDKey = "usersrpc:user_id"
	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.LogFile = ""
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.EndpointAddrGRPC == "" {
		return fmt.Errorf("grpc endpoint address is empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MaxQueued < 0 {
		return fmt.Errorf("max queued must not be negative, got %d", c.MaxQueued)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	switch c.IDAllocator {
	case AllocatorMemory, AllocatorRedis:
	default:
		return fmt.Errorf("unknown id allocator %q", c.IDAllocator)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
