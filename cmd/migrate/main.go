package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/blagoySimandov/novafields/internal/config"
	"github.com/blagoySimandov/novafields/internal/db"
	"github.com/blagoySimandov/novafields/internal/logger"
	"github.com/blagoySimandov/novafields/migrations"
	"github.com/uptrace/bun/migrate"
)

const usage = `Usage: migrate [up|down|status|create <name>]
  up     - Apply pending event schema migrations
  down   - Roll back the last migration group
  status - List migrations and whether they are applied
  create - Write a new Go migration into ./migrations`

func main() {
	cfg := config.Load()
	logger.Configure(cfg.LogLevel)

	bunDB := db.NewBunPostgresClient(cfg.DatabaseURL)
	defer bunDB.Close()

	migrator := migrate.NewMigrator(bunDB, migrations.Migrations)

	if err := run(context.Background(), migrator, os.Args[1:]); err != nil {
		logger.Log.Error("migration command failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, migrator *migrate.Migrator, args []string) error {
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}

	cmd := "up"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "up":
		group, err := migrator.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		if group.IsZero() {
			logger.Log.Info("schema is up to date")
			return nil
		}
		logger.Log.Info("migrated", "group", group.String())

	case "down":
		group, err := migrator.Rollback(ctx)
		if err != nil {
			return fmt.Errorf("failed to roll back: %w", err)
		}
		if group.IsZero() {
			logger.Log.Info("nothing to roll back")
			return nil
		}
		logger.Log.Info("rolled back", "group", group.String())

	case "status":
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		for _, m := range ms {
			logger.Log.Info("migration", "name", m.Name, "applied", m.IsApplied())
		}

	case "create":
		name := "events"
		if len(args) > 1 {
			name = strings.Join(args[1:], "_")
		}
		file, err := migrator.CreateGoMigration(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to create migration: %w", err)
		}
		logger.Log.Info("created migration", "path", file.Path)

	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
