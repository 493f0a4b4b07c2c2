package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/usersrpc/internal/client/client"
)

func NewDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a create, list, get, update, delete walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(c client.Client) error {
				app.runDemo(cmd.Context(), c, cmd.OutOrStdout())
				return nil
			})
		},
	}
}

// runDemo walks through every operation once. A failing step is reported and
// the walkthrough goes on; steps that need the first user's id are skipped if
// it could not be created.
func (a *App) runDemo(ctx context.Context, c client.Client, w io.Writer) {

	step := func(fn func(ctx context.Context) error) {
		ctx, cancel := a.callCtx(ctx)
		defer cancel()
		if err := fn(ctx); err != nil {
			fmt.Fprintln(w, client.Describe(err))
		}
	}

	var userID string

	fmt.Fprintln(w, "Creating users...")
	for i, in := range []struct{ name, email, password string }{
		{"John Doe", "john@example.com", "password123"},
		{"Jane Doe", "jane@example.com", "password456"},
	} {
		step(func(ctx context.Context) error {
			u, msg, err := c.CreateUser(ctx, in.name, in.email, in.password)
			if err != nil {
				return err
			}
			if i == 0 {
				userID = u.ID
			}
			fmt.Fprintf(w, "CreateUser Response: %s, Message: %s\n", u, msg)
			return nil
		})
	}

	listAll := func(ctx context.Context) error {
		list, total, err := c.GetUsers(ctx, 1, 10)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Total users: %d\n", total)
		for _, u := range list {
			fmt.Fprintf(w, "User: %s, Name: %s, Email: %s\n", u.ID, u.Name, u.Email)
		}
		return nil
	}

	fmt.Fprintln(w, "\nFetching all users...")
	step(listAll)

	if userID == "" {
		fmt.Fprintln(w, "\nFirst user was not created, skipping get, update and delete.")
		return
	}

	fmt.Fprintln(w, "\nFetching a specific user by ID...")
	step(func(ctx context.Context) error {
		u, err := c.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "User Found: %s\n", u)
		return nil
	})

	fmt.Fprintln(w, "\nUpdating a user...")
	step(func(ctx context.Context) error {
		u, msg, err := c.UpdateUser(ctx, userID, "John Updated", "john_updated@example.com", "newpassword123")
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "UpdateUser Response: %s, Message: %s\n", u, msg)
		return nil
	})

	fmt.Fprintln(w, "\nDeleting a user...")
	step(func(ctx context.Context) error {
		id, msg, err := c.DeleteUser(ctx, userID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "DeleteUser Response: ID %s, Message: %s\n", id, msg)
		return nil
	})

	fmt.Fprintln(w, "\nFetching all users after deletion...")
	step(listAll)
}
