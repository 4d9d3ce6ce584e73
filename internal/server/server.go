// Package server assembles the HTTP stack and runs it until a shutdown
// signal arrives.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elgarage/backend/app/routes"
	"github.com/elgarage/backend/config"
	"github.com/elgarage/backend/pkg/database"
	"github.com/elgarage/backend/pkg/logger"
	"github.com/elgarage/backend/pkg/metrics"
	"github.com/elgarage/backend/pkg/middleware"
	"github.com/elgarage/backend/pkg/reqid"
	"github.com/elgarage/backend/pkg/router"
)

const shutdownGrace = 10 * time.Second

// NewRouter builds the fully wired router with the standard middleware
// stack. Split out so tests can mount it on httptest.
func NewRouter() *router.Router {
	r := router.New()

	cors := middleware.DefaultCORSOptions()
	cors.AllowedOrigins = config.CORSOrigins()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(cors),
	)

	routes.RegisterAPI(r, database.DB)
	return r
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then drains
// in-flight requests.
func Run() error {
	addr := ":" + config.AppPort()

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter().Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
