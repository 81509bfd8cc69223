package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/customers/internal/client"
	"github.com/desertthunder/customers/internal/formatter"
	"github.com/desertthunder/customers/internal/shared"
	"github.com/desertthunder/customers/internal/ui"
	"github.com/urfave/cli/v3"
)

func (r *Runner) newClient(cmd *cli.Command) (*client.Client, error) {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	baseURL := cmd.String("url")
	if baseURL == "" {
		baseURL = config.Server.BaseURL()
	}

	return client.New(baseURL, r.httpClient), nil
}

// List fetches GET /customers from a running server and prints it.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	c, err := r.newClient(cmd)
	if err != nil {
		return err
	}

	customers, err := c.Customers(ctx)
	if err != nil {
		return err
	}

	r.logger.Debug("fetched customers", "count", len(customers))

	if cmd.Bool("json") {
		return r.writeJSON(customers, cmd.Bool("pretty"))
	}

	out, err := formatter.Render(cmd.String("format"), customers)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}

	return r.writePlain("%s", out)
}

// Health reports whether a running server is serving.
func (r *Runner) Health(ctx context.Context, cmd *cli.Command) error {
	c, err := r.newClient(cmd)
	if err != nil {
		return err
	}

	health, err := c.Health(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}

	if !health.Ready {
		r.writePlain("%s status=%s customers=%d\n", ui.Err("✗ not ready"), health.Status, health.Customers)
		return fmt.Errorf("%w: status %s", shared.ErrServiceUnavailable, health.Status)
	}

	return r.writePlain("%s status=%s customers=%d\n", ui.OK("✓ ready"), health.Status, health.Customers)
}
