package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/customers/internal/repositories"
	"github.com/desertthunder/customers/internal/seed"
	"github.com/desertthunder/customers/internal/shared"
)

const shutdownTimeout = 5 * time.Second

// AppOpts contains configuration options for creating an [App].
type AppOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Names  []string // seed dataset, defaults to [seed.Names]
}

// App owns the database, the customer store and the HTTP router for one process.
type App struct {
	config    *shared.Config
	logger    *log.Logger
	names     []string
	lifecycle *Lifecycle
	metrics   *Metrics

	db     *sql.DB
	store  *repositories.CustomerRepository
	router *BasicRouter
}

// NewApp creates an [App]. Nothing is opened until [App.Prepare].
func NewApp(opts AppOpts) *App {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &App{
		config:    opts.Config,
		logger:    opts.Logger,
		names:     opts.Names,
		lifecycle: NewLifecycle(),
		metrics:   NewMetrics(),
	}
}

// Metrics exposes the Prometheus collectors.
func (a *App) Metrics() *Metrics {
	return a.metrics
}

// Lifecycle exposes the startup state.
func (a *App) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// Prepare opens storage, creates the schema, seeds, and builds the router.
//
// Storage failures are returned wrapping [shared.ErrStorageUnavailable] and leave the app unready.
// Seed failures are logged and do not stop startup.
func (a *App) Prepare(ctx context.Context) (http.Handler, error) {
	dbConf := a.config.Database

	a.logger.Info("opening storage", "path", dbConf.Path)
	db, err := shared.NewDatabase(ctx, dbConf.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, dbConf.Path, dbConf.MaxOpenConns, dbConf.MaxIdleConns)

	a.logger.Info("running database migrations")
	if err := shared.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	a.db = db
	a.store = repositories.NewCustomerRepository(db)
	a.lifecycle.Advance(StateSchemaReady)

	report, err := seed.NewSeeder(a.store, a.logger, a.names...).Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("seeding interrupted: %w", err)
		}
		a.logger.Warn("seeding finished with failures", "failed", report.Failed, "error", err)
	}
	if n, err := a.store.Count(ctx); err == nil {
		a.metrics.SetCustomers(n)
	}
	a.lifecycle.Advance(StateSeeded)

	a.router = a.routes()
	return a.router, nil
}

func (a *App) routes() *BasicRouter {
	srvConf := a.config.Server
	router := NewBasicRouter()
	router.Use(
		RequestID(),
		Logging(shared.WithLogger(a.logger, "component", "http"), a.metrics),
		Recover(a.logger),
		RateLimit(srvConf.RateLimit, srvConf.RateBurst),
	)
	router.Handler(NewCustomersHandler(a.store, a.logger))
	router.Handler(NewHealthHandler(a.lifecycle, a.store, a.logger))
	router.Handler(NewMetricsHandler(a.metrics, a.store, a.logger))
	return router
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
//
// [App.Prepare] must have succeeded first.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	if a.router == nil {
		ln.Close()
		return fmt.Errorf("%w: app not prepared", shared.ErrServiceUnavailable)
	}

	httpServer := &http.Server{
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	a.lifecycle.Advance(StateServing)
	a.logger.Infof("serving customers at http://%v", ln.Addr())

	select {
	case err, ok := <-serverErrors:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// Run executes the whole startup sequence and serves on the configured address until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.Prepare(ctx); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", a.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.Server.Addr(), err)
	}

	return a.Serve(ctx, ln)
}

// Close releases the database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
