package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/nucampsite/internal/config"
)

// app holds the CLI state shared by every subcommand.
type app struct {
	root   *cobra.Command
	cfg    *config.Config
	logger *slog.Logger
}

func newApp() *app {
	a := &app{}

	a.root = &cobra.Command{
		Use:   "nucampsite",
		Short: "Campsite directory with reviews",
		Long: `nucampsite serves the NuCamp campsite directory: campsite details,
visitor comments with a comment submission form, partners and promotions.

Running without a subcommand starts the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}

	a.root.AddCommand(a.serveCmd())
	a.root.AddCommand(a.migrateCmd())
	a.root.AddCommand(a.seedCmd())

	return a
}

// Execute runs the CLI application.
func (a *app) Execute() error {
	return a.root.Execute()
}

// setup loads configuration (fail fast on invalid env vars) and installs the
// default logger.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) migrateCmd() *cobra.Command {
	var down int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: `Apply all pending migrations to the SQLite database at NUCAMPSITE_DB_PATH.

With --down, roll back the given number of migrations instead.`,
		Example: `  nucampsite migrate
  nucampsite migrate --down 1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if down < 0 {
				return fmt.Errorf("--down must not be negative, got %d", down)
			}
			return a.migrate(cmd.Context(), down)
		},
	}

	cmd.Flags().IntVar(&down, "down", 0, "Roll back this many migrations")
	return cmd
}

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled catalog into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.seed(cmd.Context())
		},
	}
}
