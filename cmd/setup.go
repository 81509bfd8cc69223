package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/customers/internal/shared"
	"github.com/urfave/cli/v3"
)

// openDatabase loads the --config file and opens the configured database.
func (r *Runner) openDatabase(ctx context.Context, cmd *cli.Command) (*sql.DB, *shared.Config, error) {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(ctx, config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database: %w", err)
	}

	shared.ConfigureDatabase(db, config.Database.Path, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
	return db, config, nil
}

// SetupDatabase initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	db, config, err := r.openDatabase(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	versions, err := shared.AppliedVersions(ctx, db)
	if err != nil {
		return err
	}

	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return r.writePlain("✓ Database ready (%d migrations applied)\n", len(versions))
}

// SetupRollback reverts the most recently applied migration of a file database.
func (r *Runner) SetupRollback(ctx context.Context, cmd *cli.Command) error {
	db, config, err := r.openDatabase(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if shared.IsMemoryPath(config.Database.Path) {
		return fmt.Errorf("%w: nothing to roll back in an in-memory database", shared.ErrInvalidArgument)
	}

	if err := shared.RollbackMigration(ctx, db); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	versions, err := shared.AppliedVersions(ctx, db)
	if err != nil {
		return err
	}

	r.logger.Info("rolled back migration", "path", config.Database.Path, "remaining", len(versions))
	return r.writePlain("✓ Rolled back one migration (%d still applied)\n", len(versions))
}

// SetupConfig writes the embedded example config to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Config written to %s\n", path)
}
