package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "x-request-id"

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// loggingInterceptor tags the request with an id (taken from the caller's
// metadata or generated) and logs the outcome of every call.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 {
			id = values[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	ctx = context.WithValue(ctx, requestIDKey, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{
		"request_id", id,
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
	}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "Request failed", args...)
	} else {
		s.logger.Info(ctx, "Request handled", args...)
	}

	return resp, err
}

func (s *GRPCServer) timeoutInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.requestTimeout <= 0 {
		return handler(ctx, req)
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	return handler(ctx, req)
}

// poolInterceptor runs the handler on the bounded worker pool. A full queue
// yields codes.ResourceExhausted and a panicking handler codes.Internal.
func (s *GRPCServer) poolInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	var (
		resp   any
		hndErr error
	)
	done := make(chan struct{})

	err := s.pool.Submit(func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error(ctx, "Handler panic", "request_id", requestID(ctx), "method", info.FullMethod, "panic", r)
				hndErr = status.Error(codes.Internal, internalMessage)
			}
		}()

		if err := ctx.Err(); err != nil {
			hndErr = status.FromContextError(err).Err()
			return
		}
		resp, hndErr = handler(ctx, req)
	})

	switch {
	case errors.Is(err, ants.ErrPoolOverload):
		s.logger.Warn(ctx, "Worker pool overloaded", "request_id", requestID(ctx), "method", info.FullMethod, "waiting", s.pool.Waiting())
		return nil, status.Error(codes.ResourceExhausted, "server is busy, try again later")
	case errors.Is(err, ants.ErrPoolClosed):
		return nil, status.Error(codes.Unavailable, "server is shutting down")
	case err != nil:
		s.logger.Error(ctx, "Submit to worker pool", "request_id", requestID(ctx), "error", err)
		return nil, status.Error(codes.Internal, internalMessage)
	}

	select {
	case <-done:
		return resp, hndErr
	case <-ctx.Done():
		return nil, status.FromContextError(ctx.Err()).Err()
	}
}
