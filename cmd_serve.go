package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpLayer "rice-timer/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(*cobra.Command, []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	a, err := newApp(true, os.Stderr)
	if err != nil {
		return err
	}
	defer a.shutdown()

	rateLimiter := httpLayer.NewRateLimiter(a.cfg.RateLimit, a.cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	handler := httpLayer.NewReadyTimeHandler(a.service, a.logger)

	server := &http.Server{
		Addr:         a.cfg.HTTPAddr,
		Handler:      httpLayer.NewRouter(handler, rateLimiter, a.logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("ricetimer API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		a.logger.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		a.logger.Error().Err(err).Msg("server shutdown")
		return err
	}

	a.logger.Info().Msg("server exited")
	return nil
}
