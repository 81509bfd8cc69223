package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/customers/internal/server"
	"github.com/desertthunder/customers/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve opens storage, migrates, seeds, and serves until the context is cancelled.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.IsSet("host") {
		config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		config.Server.Port = int(cmd.Int("port"))
	}
	if err := config.Validate(); err != nil {
		return err
	}

	app := server.NewApp(server.AppOpts{
		Config: config,
		Logger: shared.WithLogger(r.logger, "addr", config.Server.Addr()),
	})
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	r.logger.Info("server stopped")
	return nil
}
