package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Options selects and configures a Logger backend.
type Options struct {
	// Backend is BackendSlog or BackendZap.
	Backend string
	// Level is one of debug, info, warn, error.
	Level string
	// File, when set, sends zap output to a rotated log file instead of Output.
	File string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New builds the Logger described by opts.
func New(opts Options) (Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	switch opts.Backend {
	case "", BackendSlog:
		var level slog.Level
		if err := level.UnmarshalText([]byte(levelOrDefault(opts.Level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		level, err := zapcore.ParseLevel(levelOrDefault(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}

		var core zapcore.Core
		if opts.File != "" {
			core = newRotatingZapCore(opts.File, level)
		} else {
			core = zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(out),
				level,
			)
		}
		return NewZapLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
