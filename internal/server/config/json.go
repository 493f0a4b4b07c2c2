package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/usersrpc/internal/flagx"
	"github.com/dmitrijs2005/usersrpc/internal/timex"
)

// JsonConfig mirrors Config for JSON decoding. Pointer fields distinguish
// "absent" from a zero value, so a partial file only overrides what it sets.
type JsonConfig struct {
	EndpointAddrGRPC   *string         `json:"endpoint_addr_grpc"`
	Workers            *int            `json:"workers"`
	MaxQueued          *int            `json:"max_queued"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	PasswordHasher     *string         `json:"password_hasher"`
	BcryptCost         *int            `json:"bcrypt_cost"`
	ExposePasswordHash *bool           `json:"expose_password_hash"`
	IDAllocator        *string         `json:"id_allocator"`
	RedisAddr          *string         `json:"redis_addr"`
	RedisPassword      *string         `json:"redis_password"`
	RedisIDKey         *string         `json:"redis_id_key"`
	LogBackend         *string         `json:"log_backend"`
	LogLevel           *string         `json:"log_level"`
	LogFile            *string         `json:"log_file"`
}

// parseJson loads the file named by -c/-config into config. Without the flag
// nothing happens. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.Workers, c.Workers)
	setIf(&config.MaxQueued, c.MaxQueued)
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	setIf(&config.PasswordHasher, c.PasswordHasher)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.ExposePasswordHash, c.ExposePasswordHash)
	setIf(&config.IDAllocator, c.IDAllocator)
	setIf(&config.RedisAddr, c.RedisAddr)
	setIf(&config.RedisPassword, c.RedisPassword)
	setIf(&config.RedisIDKey, c.RedisIDKey)
	setIf(&config.LogBackend, c.LogBackend)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.LogFile, c.LogFile)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
