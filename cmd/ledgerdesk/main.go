package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/bootstrap"
	"ledgerdesk/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	overrides := &config.Overrides{}

	root := &cobra.Command{
		Use:           "ledgerdesk",
		Short:         "Invoices and purchases console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&overrides.ConfigFile, "config", "", "config file (default <state-dir>/config.yaml)")
	root.PersistentFlags().StringVar(&overrides.StateDir, "state-dir", "", "directory for session storage and logs")
	root.PersistentFlags().StringVar(&overrides.BaseURL, "base-url", "", "API base url")
	root.PersistentFlags().StringVar(&overrides.LogLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(overrides))
	root.AddCommand(newLoginCmd(overrides))
	root.AddCommand(newSignupCmd(overrides))
	root.AddCommand(newLogoutCmd(overrides))
	root.AddCommand(newWhoamiCmd(overrides))
	root.AddCommand(newInvoiceCmd(overrides))
	root.AddCommand(newPurchaseCmd(overrides))
	root.AddCommand(newOverviewCmd(overrides))
	return root
}

// withApp builds the app for one command and closes it afterwards.
func withApp(cmd *cobra.Command, overrides *config.Overrides, run func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := config.Load(*overrides)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return run(ctx, app)
}

// withUser is withApp for commands behind the route guard.
func withUser(cmd *cobra.Command, overrides *config.Overrides, run func(ctx context.Context, app *bootstrap.App) error) error {
	return withApp(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
		if _, err := app.SessionCLI.RequireUser(ctx); err != nil {
			return fmt.Errorf("%w (run `ledgerdesk login`)", err)
		}
		return run(ctx, app)
	})
}

func newTUICmd(overrides *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, overrides, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(app)
			})
		},
	}
}

func newLoginCmd(overrides *config.Overrides) *cobra.Command {
	var email, password string
	login := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				user, err := app.SessionCLI.Login(ctx, email, password)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", user.Email, roleLabel(user.Role))
				return nil
			})
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password")
	return login
}

func newSignupCmd(overrides *config.Overrides) *cobra.Command {
	var email, password, confirm, role string
	signup := &cobra.Command{
		Use:   "signup --email <email> --password <password> --confirm <password>",
		Short: "Create an account and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				user, err := app.SessionCLI.Signup(ctx, email, password, confirm, role)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed up as %s (%s)\n", user.Email, roleLabel(user.Role))
				return nil
			})
		},
	}
	signup.Flags().StringVar(&email, "email", "", "account email")
	signup.Flags().StringVar(&password, "password", "", "account password")
	signup.Flags().StringVar(&confirm, "confirm", "", "password confirmation")
	signup.Flags().StringVar(&role, "role", "user", "account role: user|manager|admin")
	return signup
}

func newLogoutCmd(overrides *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.Logout(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
				return nil
			})
		},
	}
}

func newWhoamiCmd(overrides *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				who, err := app.SessionCLI.Whoami(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "id: %s\nemail: %s\nrole: %s\nprivileged: %t\n", who.User.ID, who.User.Email, roleLabel(who.User.Role), who.User.Privileged)
				if who.HasExpiry {
					state := "valid"
					if time.Now().After(who.ExpiresAt) {
						state = "expired"
					}
					_, _ = fmt.Fprintf(out, "token expires: %s (%s)\n", who.ExpiresAt.Local().Format(time.RFC1123), state)
				}
				_, _ = fmt.Fprintf(out, "api: %s\n", app.Config.BaseURL)
				return nil
			})
		},
	}
}

func newOverviewCmd(overrides *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Summarize invoices and purchases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				overview, err := app.DashboardCLI.Overview(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, section := range []struct {
					name  string
					error string
					count int
					total float64
					by    []string
				}{
					{"invoices", overview.Invoices.Error, len(overview.Invoices.Records), overview.Invoices.Total, statusCounts(overview.Invoices.Counts)},
					{"purchases", overview.Purchases.Error, len(overview.Purchases.Records), overview.Purchases.Total, statusCounts(overview.Purchases.Counts)},
				} {
					if section.error != "" {
						_, _ = fmt.Fprintf(out, "%s: unavailable (%s)\n", section.name, section.error)
						continue
					}
					_, _ = fmt.Fprintf(out, "%s: %d total=$%.2f %s\n", section.name, section.count, section.total, strings.Join(section.by, " "))
				}
				return nil
			})
		},
	}
}

func roleLabel(role string) string {
	if strings.TrimSpace(role) == "" {
		return "no role"
	}
	return role
}
