package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/users.Users/GetUsers"}

func TestPoolInterceptor_RunsHandler(t *testing.T) {
	s := newTestServer(t, &fakeUser{})

	resp, err := s.poolInterceptor(context.Background(), "req", testInfo, func(ctx context.Context, req any) (any, error) {
		return req.(string) + "-ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req-ok", resp)
}

func TestPoolInterceptor_OverloadIsResourceExhausted(t *testing.T) {
	s := newTestServer(t, &fakeUser{}, WithWorkerPool(1, 0))

	release := make(chan struct{})
	started := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		_, err := s.poolInterceptor(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
			close(started)
			<-release
			return nil, nil
		})
		firstDone <- err
	}()
	<-started

	called := false
	_, err := s.poolInterceptor(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
	assert.False(t, called)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestPoolInterceptor_PanicIsInternal(t *testing.T) {
	s := newTestServer(t, &fakeUser{})

	_, err := s.poolInterceptor(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		panic("boom")
	})
	st := status.Convert(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, internalMessage, st.Message())

	// the worker survives the panic
	resp, err := s.poolInterceptor(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestPoolInterceptor_CancelledBeforeStart(t *testing.T) {
	s := newTestServer(t, &fakeUser{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.poolInterceptor(ctx, nil, testInfo, func(context.Context, any) (any, error) {
		t.Error("handler must not run for a cancelled request")
		return nil, nil
	})
	assert.Equal(t, codes.Canceled, status.Code(err))
}

func TestPoolInterceptor_ClosedPoolIsUnavailable(t *testing.T) {
	s, err := NewgGRPCServer("", nopLogger{}, &fakeUser{})
	require.NoError(t, err)
	s.Close()

	_, err = s.poolInterceptor(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		return nil, nil
	})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestTimeoutInterceptor(t *testing.T) {
	s := newTestServer(t, &fakeUser{}, WithRequestTimeout(time.Minute))

	_, err := s.timeoutInterceptor(context.Background(), nil, testInfo, func(ctx context.Context, _ any) (any, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		return nil, nil
	})
	require.NoError(t, err)

	off := newTestServer(t, &fakeUser{}, WithRequestTimeout(0))
	_, err = off.timeoutInterceptor(context.Background(), nil, testInfo, func(ctx context.Context, _ any) (any, error) {
		_, ok := ctx.Deadline()
		assert.False(t, ok)
		return nil, nil
	})
	require.NoError(t, err)
}

func TestTimeoutInterceptor_SlowHandlerHitsDeadline(t *testing.T) {
	s := newTestServer(t, &fakeUser{}, WithRequestTimeout(20*time.Millisecond))

	chain := func(ctx context.Context, req any) (any, error) {
		return s.poolInterceptor(ctx, req, testInfo, func(ctx context.Context, _ any) (any, error) {
			<-ctx.Done()
			time.Sleep(10 * time.Millisecond)
			return "late", nil
		})
	}

	_, err := s.timeoutInterceptor(context.Background(), nil, testInfo, chain)
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

func TestLoggingInterceptor_AssignsRequestID(t *testing.T) {
	logger := &recordingLogger{}
	s, err := NewgGRPCServer("", logger, &fakeUser{})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	var seen string
	_, err = s.loggingInterceptor(context.Background(), nil, testInfo, func(ctx context.Context, _ any) (any, error) {
		seen = requestID(ctx)
		return nil, status.Error(codes.Internal, internalMessage)
	})
	require.Error(t, err)
	assert.Len(t, seen, 36)

	entries := logger.all()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Contains(t, last, "ERROR Request failed")
	assert.Contains(t, last, seen)
}
