// Package config holds the defaults of the usersctl command line client.
// Command-line flags override them.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces the client's environment variables, e.g. USERSCTL_ADDR.
const EnvPrefix = "USERSCTL"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the users gRPC endpoint.
//   - RequestTimeout: deadline for each call.
type Config struct {
	ServerEndpointAddr string        `envconfig:"ADDR"`
	RequestTimeout     time.Duration `envconfig:"TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "localhost:50051"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig applies defaults and overlays USERSCTL_* environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}
