package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"penguins.dashboard/internal/app"
	"penguins.dashboard/internal/appconf"
	"penguins.dashboard/internal/logging"
	"penguins.dashboard/internal/metrics"
	"penguins.dashboard/internal/penguins"
	"penguins.dashboard/internal/restapi"
	"penguins.dashboard/internal/webui"
)

func main() {
	var cfg appconf.Config
	var envFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "HTTP server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&cfg.DataSource, "data", penguins.DefaultSource, "Path or URL of the palmerpenguins CSV")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per client for the JSON API (0 disables)")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	if err := run(cfg); err != nil {
		os.Exit(1)
	}
}

func run(cfg appconf.Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewStructuredLogger(os.Stdout, level)
	if err != nil {
		logger.Warn("falling back to info log level", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := buildApplication(logging.WithLogger(ctx, logger), cfg, logger)
	if err != nil {
		return logging.ReplaceLogFatal(logger, "failed to start dashboard", err)
	}

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	ui, err := webui.NewWebUI(application)
	if err != nil {
		return logging.ReplaceLogFatal(logger, "failed to start dashboard", err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      routes(application, api, ui),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return logging.ReplaceLogFatal(logger, "server stopped", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return logging.ReplaceLogFatal(logger, "graceful shutdown failed", err)
	}
	return nil
}

// buildApplication loads the dataset once and wires the shared dependencies.
func buildApplication(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	start := time.Now()
	dataset, err := penguins.Load(loadCtx, cfg.DataSource)
	if err != nil {
		return nil, err
	}

	counts := dataset.CountBySpecies()
	logging.LogOperation(logger, "penguin_data_loaded",
		slog.String("source", cfg.DataSource),
		slog.Int("rows", dataset.Len()),
		slog.Int("adelie", counts[penguins.Adelie]),
		slog.Int("gentoo", counts[penguins.Gentoo]),
		slog.Int("chinstrap", counts[penguins.Chinstrap]),
		slog.Duration("duration", time.Since(start)))

	m := metrics.New()
	m.SetDatasetRows(dataset.Len())

	return &app.Application{
		Config:  cfg,
		Logger:  logger,
		Dataset: dataset,
		Metrics: m,
	}, nil
}
