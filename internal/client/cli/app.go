// Package cli implements usersctl, the command line client of the users
// service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/usersrpc/internal/client/client"
	"github.com/dmitrijs2005/usersrpc/internal/client/config"
	"github.com/dmitrijs2005/usersrpc/internal/client/models"
)

// Dialer opens a client for the server at addr.
type Dialer func(addr string) (client.Client, error)

func DefaultDialer(addr string) (client.Client, error) {
	return client.NewUsersClient(addr)
}

// errReported marks a failure that was already shown to the user.
var errReported = errors.New("command failed")

// App holds state shared by all subcommands.
type App struct {
	Addr    string
	Timeout time.Duration

	dial Dialer
}

func NewApp(cfg *config.Config, dial Dialer) *App {
	return &App{
		Addr:    cfg.ServerEndpointAddr,
		Timeout: cfg.RequestTimeout,
		dial:    dial,
	}
}

// withClient dials the server, runs fn and closes the connection.
func (a *App) withClient(fn func(client.Client) error) error {
	c, err := a.dial(a.Addr)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", a.Addr, err)
	}
	defer c.Close()

	return fn(c)
}

// callCtx bounds a single call by the configured timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.Timeout)
}

// report prints the canned message for err and returns errReported.
func report(w io.Writer, err error) error {
	fmt.Fprintln(w, client.Describe(err))
	return errReported
}

func printUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "User: %s, Name: %s, Email: %s", u.ID, u.Name, u.Email)
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(w, ", Created: %s, Updated: %s", u.CreatedAt.Format(time.RFC3339), u.UpdatedAt.Format(time.RFC3339))
	}
	if u.PasswordHash != "" {
		fmt.Fprintf(w, ", PasswordHash: %s", u.PasswordHash)
	}
	fmt.Fprintln(w)
}
