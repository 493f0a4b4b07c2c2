package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"server",
				"-a", "127.0.0.1:9090", "-w", "4", "-q", "8", "-t", "750ms", "-x", "bcrypt", "-e",
				"-i", "redis", "-r", "redis:6379", "-l", "zap", "-v", "debug", "-f", "/tmp/users.log",
			},
			expected: &Config{
				EndpointAddrGRPC:   "127.0.0.1:9090",
				Workers:            4,
				MaxQueued:          8,
				RequestTimeout:     750 * time.Millisecond,
				PasswordHasher:     "bcrypt",
				ExposePasswordHash: true,
				IDAllocator:        "redis",
				RedisAddr:          "redis:6379",
				LogBackend:         "zap",
				LogLevel:           "debug",
				LogFile:            "/tmp/users.log",
			},
		},
		{
			name:     "unrelated flags are ignored",
			args:     []string{"server", "-c", "cfg.json", "-w", "2"},
			expected: &Config{Workers: 2},
		},
		{
			name:        "bad integer panics",
			args:        []string{"server", "-w", "many"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
