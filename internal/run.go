package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// Run starts the HTTP server and blocks until shutdown.
// It handles SIGINT and SIGTERM for graceful shutdown.
//
// The adapter is resolved once from the Environment option (or WithAdapter)
// before anything listens. Returns nil on clean shutdown, or an error if the
// server fails to start or shutdown hooks fail.
//
// Example:
//
//	err := app.Run(
//	    ssrkit.Address(":8080"),
//	    ssrkit.Environment(cfg.Env),
//	    ssrkit.Logger(log),
//	)
func (a *App) Run(opts ...RunOption) error {
	cfg := buildRunConfig(opts...)

	log := cfg.logger
	if log == nil {
		log = a.logger
	}
	adapter := cfg.adapter
	if adapter == nil {
		adapter = AdapterFor(cfg.env)
	}

	baseCtx := cfg.baseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for _, hook := range cfg.startupHooks {
		if err := hook(ctx); err != nil {
			return fmt.Errorf("startup hook: %w", err)
		}
	}

	server := adapter.Server(cfg.address, a, log)

	ln := cfg.listener
	if ln == nil {
		l, err := net.Listen("tcp", server.Addr)
		if err != nil {
			return err
		}
		ln = l
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server starting",
			slog.String("address", ln.Addr().String()),
			slog.String("adapter", adapter.Name()),
		)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown(server, cfg, log)
	})

	return g.Wait()
}

// shutdown stops the server, then runs the shutdown hooks under one timeout.
func (a *App) shutdown(server *http.Server, cfg *runConfig, log *slog.Logger) error {
	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer cancel()

	var errs []error

	if err := server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	for _, hook := range cfg.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			log.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		log.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}

	log.Info("shutdown completed")
	return nil
}
