// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// serveCommand runs the full startup sequence and serves HTTP until interrupted.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Create the schema, seed the customers table and serve GET /customers",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Override server.host",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Override server.port",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles database and configuration setup.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Revert the most recently applied migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupRollback,
			},
			{
				Name:   "config",
				Usage:  "Write the example configuration file",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
		},
	}
}

// listCommand fetches customers from a running server.
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List customers from a running server",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "url",
				Usage: "Server base URL (defaults to the configured host and port)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: table, csv, markdown, text",
				Value:   "table",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		},
		Action: r.List,
	}
}

// healthCommand reports the state of a running server.
func healthCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Check whether a running server is ready",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "url",
				Usage: "Server base URL (defaults to the configured host and port)",
			},
		},
		Action: r.Health,
	}
}
