// Package grpc adapts UserService to the users.Users gRPC service.
package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/panjf2000/ants/v2"
	"google.golang.org/grpc"

	"github.com/dmitrijs2005/usersrpc/internal/logging"
	pb "github.com/dmitrijs2005/usersrpc/internal/proto"
	"github.com/dmitrijs2005/usersrpc/internal/server/models"
)

const (
	DefaultWorkers   = 10
	DefaultMaxQueued = 100
)

// UserService is the use-case layer the handlers delegate to.
type UserService interface {
	CreateUser(ctx context.Context, name, email, password string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]*models.User, int, error)
	UpdateUser(ctx context.Context, id, name, email, password string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type GRPCServer struct {
	pb.UnimplementedUsersServer
	address string
	users   UserService
	logger  logging.Logger

	pool               *ants.Pool
	workers            int
	maxQueued          int
	requestTimeout     time.Duration
	exposePasswordHash bool
}

type Option func(*GRPCServer)

// WithWorkerPool bounds concurrent handlers to workers; up to maxQueued
// further requests wait for a free worker, the rest are rejected.
func WithWorkerPool(workers, maxQueued int) Option {
	return func(s *GRPCServer) {
		s.workers = workers
		s.maxQueued = maxQueued
	}
}

// WithRequestTimeout sets a deadline on every request. Zero disables it.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *GRPCServer) {
		s.requestTimeout = d
	}
}

// WithPasswordHash makes responses carry the stored password hash.
func WithPasswordHash(expose bool) Option {
	return func(s *GRPCServer) {
		s.exposePasswordHash = expose
	}
}

func NewgGRPCServer(a string, l logging.Logger, us UserService, opts ...Option) (*GRPCServer, error) {
	s := &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		workers:   DefaultWorkers,
		maxQueued: DefaultMaxQueued,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", s.workers)
	}
	if s.maxQueued < 0 {
		return nil, fmt.Errorf("max queued must not be negative, got %d", s.maxQueued)
	}

	poolOpts := []ants.Option{ants.WithMaxBlockingTasks(s.maxQueued)}
	if s.maxQueued == 0 {
		poolOpts = []ants.Option{ants.WithNonblocking(true)}
	}
	pool, err := ants.NewPool(s.workers, poolOpts...)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	s.pool = pool

	return s, nil
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully and waits for
// in-flight requests.
// If serving fails first, the server is stopped and the error is returned.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.timeoutInterceptor,
		s.poolInterceptor,
	))

	pb.RegisterUsersServer(srv, s)

	var serveErr error
	served := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-served:
			s.logger.Error(ctx, "gRPC server stopped serving", "error", serveErr)
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String(), "workers", s.workers, "max_queued", s.maxQueued)

	// starts accepting incoming connections
	serveErr = srv.Serve(lis)
	close(served)

	<-stopped
	return serveErr
}

// Close releases the worker pool. Requests arriving afterwards fail with
// codes.Unavailable.
func (s *GRPCServer) Close() {
	s.pool.Release()
}
