package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/usersrpc/internal/client/client"
)

func NewCreateCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(c client.Client) error {
				ctx, cancel := app.callCtx(cmd.Context())
				defer cancel()

				u, msg, err := c.CreateUser(ctx, name, email, password)
				if err != nil {
					return report(cmd.ErrOrStderr(), err)
				}
				printUser(cmd.OutOrStdout(), u)
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password, at least 6 characters")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func NewGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(c client.Client) error {
				ctx, cancel := app.callCtx(cmd.Context())
				defer cancel()

				u, err := c.GetUserByID(ctx, args[0])
				if err != nil {
					return report(cmd.ErrOrStderr(), err)
				}
				printUser(cmd.OutOrStdout(), u)
				return nil
			})
		},
	}
}

func NewListCmd(app *App) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(c client.Client) error {
				ctx, cancel := app.callCtx(cmd.Context())
				defer cancel()

				list, total, err := c.GetUsers(ctx, page, pageSize)
				if err != nil {
					return report(cmd.ErrOrStderr(), err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Total users: %d\n", total)
				for _, u := range list {
					printUser(cmd.OutOrStdout(), u)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "users per page")

	return cmd
}

func NewUpdateCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a user's name and email, optionally the password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(c client.Client) error {
				ctx, cancel := app.callCtx(cmd.Context())
				defer cancel()

				u, msg, err := c.UpdateUser(ctx, args[0], name, email, password)
				if err != nil {
					return report(cmd.ErrOrStderr(), err)
				}
				printUser(cmd.OutOrStdout(), u)
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new email address")
	cmd.Flags().StringVar(&password, "password", "", "new password; empty keeps the current one")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func NewDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(c client.Client) error {
				ctx, cancel := app.callCtx(cmd.Context())
				defer cancel()

				id, msg, err := c.DeleteUser(ctx, args[0])
				if err != nil {
					return report(cmd.ErrOrStderr(), err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ID %s, Message: %s\n", id, msg)
				return nil
			})
		},
	}
}
