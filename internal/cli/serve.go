package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"PoliceDigest/internal/app"
	controller "PoliceDigest/internal/controller/http"
	"PoliceDigest/internal/dashboard"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(rt *runtime) *cli.Command {
	var (
		addr     string
		schedule bool
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the dashboard HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "Listen address, defaults to server.addr",
				Destination: &addr,
			},
			&cli.BoolFlag{
				Name:        "schedule",
				Usage:       "Also run the daily export scheduler",
				Destination: &schedule,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			if addr == "" {
				addr = rt.cfg.Server.Addr
			}

			a, err := app.New(ctx, rt.cfg, rt.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			if schedule {
				s, err := a.Scheduler()
				if err != nil {
					return err
				}
				if err := s.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start scheduler")
				}
				defer func() {
					if err := s.Stop(context.Background()); err != nil {
						logger.Warn("scheduler stop failed", "error", err)
					}
				}()
			}

			// The dashboard starts with today's digest, like a fresh page load.
			go func() {
				if _, err := a.Session.Process(ctx, dashboard.Midnight(time.Now())); err != nil {
					logger.Warn("initial processing failed", "error", err)
				}
			}()

			server := controller.NewServer(ctx, addr, a.Session)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			waitForShutdown(ctx, logger)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

func waitForShutdown(ctx context.Context, logger *slog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
	}
}
