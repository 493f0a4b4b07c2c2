package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		EndpointAddrGRPC:   ":50051",
		Workers:            10,
		MaxQueued:          100,
		RequestTimeout:     5 * time.Second,
		PasswordHasher:     "sha256",
		BcryptCost:         10,
		ExposePasswordHash: false,
		IDAllocator:        AllocatorMemory,
		RedisAddr:          "127.0.0.1:6379",
		RedisIDKey:         "usersrpc:user_id",
		LogBackend:         "slog",
		LogLevel:           "info",
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, defaultConfig(), &c)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsWithoutOverrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server"}
	t.Chdir(t.TempDir())

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, defaultConfig(), c)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty address", func(c *Config) { c.EndpointAddrGRPC = "" }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"negative queue", func(c *Config) { c.MaxQueued = -1 }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
		{"unknown allocator", func(c *Config) { c.IDAllocator = "etcd" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			tt.mutate(c)
			require.Error(t, c.Validate())
		})
	}
}
