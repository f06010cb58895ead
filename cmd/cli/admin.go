package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/auth"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/config"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/logger"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/postgres"
)

// newMigrator is swapped in tests.
var newMigrator = func(cfg *config.Config, log zerolog.Logger) (migrator, error) {
	return postgres.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, log)
}

type migrator interface {
	Up() error
	Down(steps int) error
	Close() error
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations using DATABASE_URL and MIGRATIONS_PATH",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m migrator) error { return m.Up() })
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("steps must be at least 1")
			}
			return withMigrator(func(m migrator) error { return m.Down(steps) })
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

func withMigrator(fn func(migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console", Output: os.Stderr})

	m, err := newMigrator(cfg, log)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "API token operations",
	}

	var subject, role string
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a bearer token with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			r, err := domain.ParseRole(role)
			if err != nil {
				return err
			}

			signed, err := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration).Generate(subject, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	issueCmd.Flags().StringVar(&subject, "subject", "", "Token subject")
	issueCmd.Flags().StringVar(&role, "role", string(domain.RoleViewer), "Role: viewer, accountant or admin")
	_ = issueCmd.MarkFlagRequired("subject")

	cmd.AddCommand(issueCmd)
	return cmd
}
