package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/usersrpc/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g. ":50051")
//	-w int        worker pool size
//	-q int        max requests waiting for a worker
//	-t duration   per-request timeout (e.g. "5s")
//	-x string     password hasher: sha256 | bcrypt | argon2id
//	-e            expose password hashes in responses (use -e=false to disable)
//	-i string     id allocator: memory | redis
//	-r string     Redis address for the redis allocator
//	-l string     log backend: slog | zap
//	-v string     log level
//	-f string     log file (zap backend)
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-a", "-w", "-q", "-t", "-x", "-i", "-r", "-l", "-v", "-f"},
		"-e",
	)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.IntVar(&config.Workers, "w", config.Workers, "worker pool size")
	fs.IntVar(&config.MaxQueued, "q", config.MaxQueued, "max requests waiting for a worker")
	fs.DurationVar(&config.RequestTimeout, "t", config.RequestTimeout, "per-request timeout")
	fs.StringVar(&config.PasswordHasher, "x", config.PasswordHasher, "password hasher (sha256|bcrypt|argon2id)")
	fs.BoolVar(&config.ExposePasswordHash, "e", config.ExposePasswordHash, "expose password hashes in responses")
	fs.StringVar(&config.IDAllocator, "i", config.IDAllocator, "id allocator (memory|redis)")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend (slog|zap)")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.LogFile, "f", config.LogFile, "log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
