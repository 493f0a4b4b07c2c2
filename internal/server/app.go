// Package server wires the user service together: logger, identifier
// allocator, record store, password hasher and the gRPC endpoint. It also
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/usersrpc/internal/cryptox"
	"github.com/dmitrijs2005/usersrpc/internal/logging"
	"github.com/dmitrijs2005/usersrpc/internal/server/config"
	"github.com/dmitrijs2005/usersrpc/internal/server/idgen"
	"github.com/dmitrijs2005/usersrpc/internal/server/repositories/users"
	"github.com/dmitrijs2005/usersrpc/internal/server/services"

	gs "github.com/dmitrijs2005/usersrpc/internal/server/grpc"
)

const redisConnectTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	server  *gs.GRPCServer
	closers []func() error
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.New(logging.Options{
		Backend: c.LogBackend,
		Level:   c.LogLevel,
		File:    c.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	app := &App{config: c, logger: logger}

	ids, err := app.newAllocator()
	if err != nil {
		app.close()
		return nil, fmt.Errorf("id allocator init error: %w", err)
	}

	hasher, err := cryptox.NewPasswordHasher(c.PasswordHasher, c.BcryptCost)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("password hasher init error: %w", err)
	}

	us := services.NewUserService(users.NewInMemoryRepository(ids), hasher)

	srv, err := gs.NewgGRPCServer(c.EndpointAddrGRPC, logger, us,
		gs.WithWorkerPool(c.Workers, c.MaxQueued),
		gs.WithRequestTimeout(c.RequestTimeout),
		gs.WithPasswordHash(c.ExposePasswordHash),
	)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("grpc server init error: %w", err)
	}
	app.server = srv
	app.closers = append(app.closers, func() error {
		srv.Close()
		return nil
	})

	return app, nil
}

func (app *App) newAllocator() (idgen.Allocator, error) {
	if app.config.IDAllocator != config.AllocatorRedis {
		return idgen.NewSequenceAllocator(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, err := idgen.NewRedisClient(ctx, app.config.RedisAddr, app.config.RedisPassword, nil)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, client.Close)

	app.logger.Info(ctx, "Using Redis id allocator", "addr", app.config.RedisAddr, "key", app.config.RedisIDKey)
	return idgen.NewRedisAllocator(client, app.config.RedisIDKey), nil
}

// watchSignals cancels the app on SIGINT, SIGTERM or SIGQUIT.
func (app *App) watchSignals(ctx context.Context, cancelFunc context.CancelFunc) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	select {
	case sig := <-sigs:
		app.logger.Info(ctx, "Received signal, shutting down", "signal", sig.String())
		cancelFunc()
	case <-ctx.Done():
	}
	return nil
}

// Run serves until ctx is cancelled, a signal arrives or the server fails,
// then releases every resource NewApp acquired.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.watchSignals(gctx, cancelFunc)
	})

	g.Go(func() error {
		return app.server.Run(gctx)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "Server stopped with error", "error", err)
	} else {
		app.logger.Info(ctx, "Server stopped")
	}

	return errors.Join(err, app.close())
}

func (app *App) close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	app.closers = nil

	if s, ok := app.logger.(interface{ Sync() error }); ok {
		// stdout cannot be synced on some platforms
		_ = s.Sync()
	}
	return errors.Join(errs...)
}
