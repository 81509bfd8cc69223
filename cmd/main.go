package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/customers/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "customers",
		Usage:    "Seed a customers table and serve it as JSON over HTTP",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
