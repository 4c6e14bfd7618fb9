// Package server wires configuration, storage, the token service and the
// gRPC transport together and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/passlocker/internal/logging"
	"github.com/dmitrijs2005/passlocker/internal/password"
	"github.com/dmitrijs2005/passlocker/internal/server/auth"
	"github.com/dmitrijs2005/passlocker/internal/server/config"
	"github.com/dmitrijs2005/passlocker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/passlocker/internal/server/services"

	gs "github.com/dmitrijs2005/passlocker/internal/server/grpc"
)

// MemoryDSN selects the in-process user store instead of PostgreSQL.
const MemoryDSN = "memory://"

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

// NewApp builds the application from a validated config. With a PostgreSQL
// DSN it connects and applies migrations before returning.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	sc, err := c.SigningContext()
	if err != nil {
		return nil, err
	}
	tokens := auth.NewTokenService(sc)

	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	if c.DatabaseDSN == MemoryDSN {
		logger.Warn(ctx, "Using in-memory user store, data will not survive a restart")
		rm = repomanager.NewInMemoryRepositoryManager()
	} else {
		db, err = repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		pm := repomanager.NewPostgresRepositoryManager()
		if err := pm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = pm
	}

	us := services.NewUserService(db, rm, password.Default(), tokens)

	return &App{config: c, logger: logger, db: db, userService: us}, nil
}

// initSignalHandler cancels on SIGINT, SIGTERM or SIGQUIT. The watcher
// unregisters and exits once ctx is done; the returned channel closes then.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) <-chan struct{} {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", sig.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	return done
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal is received.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	signalsDone := app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	cancelFunc()
	<-signalsDone

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}
