package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/usersrpc/internal/client/config"
)

// NewRootCmd builds the usersctl command tree. Flag defaults come from cfg.
func NewRootCmd(cfg *config.Config, dial Dialer) *cobra.Command {
	app := NewApp(cfg, dial)

	cmd := &cobra.Command{
		Use:   "usersctl",
		Short: "Command line client for the users gRPC service",
		Long: `usersctl talks to the users gRPC service.

Examples:
  usersctl create --name "John Doe" --email john@example.com --password password123
  usersctl list --page 1 --page-size 10
  usersctl get 1
  usersctl update 1 --name "John Updated" --email john_updated@example.com
  usersctl delete 1
  usersctl demo
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVarP(&app.Addr, "addr", "a", app.Addr, "server address host:port")
	cmd.PersistentFlags().DurationVarP(&app.Timeout, "timeout", "t", app.Timeout, "per-request timeout")

	cmd.AddCommand(NewCreateCmd(app))
	cmd.AddCommand(NewGetCmd(app))
	cmd.AddCommand(NewListCmd(app))
	cmd.AddCommand(NewUpdateCmd(app))
	cmd.AddCommand(NewDeleteCmd(app))
	cmd.AddCommand(NewDemoCmd(app))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs usersctl and exits with status 1 on failure.
func Execute() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := NewRootCmd(cfg, DefaultDialer).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
