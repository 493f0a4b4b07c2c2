package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable, e.g. USERSRPC_WORKERS.
const EnvPrefix = "USERSRPC"

// parseEnv overlays variables from the environment, after loading a .env file
// from the working directory if there is one. Variables already present in the
// environment win over .env entries. Unset variables leave config untouched.
func parseEnv(config *Config) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		panic(err)
	}
}
