package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/usersrpc/internal/cryptox"
	"github.com/dmitrijs2005/usersrpc/internal/logging"
	gs "github.com/dmitrijs2005/usersrpc/internal/server/grpc"
	"github.com/dmitrijs2005/usersrpc/internal/server/idgen"
	"github.com/dmitrijs2005/usersrpc/internal/server/repositories/users"
	"github.com/dmitrijs2005/usersrpc/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func startServer(t *testing.T) *GRPCClient {
	t.Helper()

	us := services.NewUserService(users.NewInMemoryRepository(idgen.NewSequenceAllocator()), cryptox.SHA256Hasher{})
	srv, err := gs.NewgGRPCServer("", nopLogger{}, us)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	c, err := NewUsersClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
		srv.Close()
	})
	return c
}

func TestClientAgainstServer(t *testing.T) {
	c := startServer(t)
	ctx := context.Background()

	john, msg, err := c.CreateUser(ctx, "John Doe", "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", msg)
	assert.Equal(t, "John Doe", john.Name)
	assert.Empty(t, john.PasswordHash)
	assert.False(t, john.CreatedAt.IsZero())

	_, _, err = c.CreateUser(ctx, "Again", "john@example.com", "password123")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, "Error: Resource already exists.", Describe(err))

	_, _, err = c.CreateUser(ctx, "", "nope", "1")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "Error: Invalid argument provided: name, email, password.", Describe(err))

	updated, _, err := c.UpdateUser(ctx, john.ID, "John Updated", "john_updated@example.com", "newpassword123")
	require.NoError(t, err)
	assert.Equal(t, "john_updated@example.com", updated.Email)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	list, total, err := c.GetUsers(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, list, 1)

	deletedID, _, err := c.DeleteUser(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, john.ID, deletedID)

	_, err = c.GetUserByID(ctx, john.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Error: Resource not found.", Describe(err))
}
