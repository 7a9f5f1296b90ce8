package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shubhxg/dex-amm/internal/audit"
	"github.com/shubhxg/dex-amm/internal/config"
	"github.com/shubhxg/dex-amm/internal/handler"
	"github.com/shubhxg/dex-amm/internal/logging"
	"github.com/shubhxg/dex-amm/internal/metrics"
	"github.com/shubhxg/dex-amm/internal/service"
	"github.com/shubhxg/dex-amm/pkg/amm"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	envFile := pflag.String("env-file", ".env", "path to an optional dotenv file")
	pflag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", *envFile, err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	auditFile, err := audit.OpenFile(cfg.AuditLogPath)
	if err != nil {
		return err
	}
	defer auditFile.Close()
	auditSink := audit.NewLogSink(logging.NewAuditLogger(io.MultiWriter(os.Stdout, auditFile)))

	pool, err := amm.NewPool(amm.Config{
		BaseSymbol:   cfg.BaseSymbol,
		QuoteSymbol:  cfg.QuoteSymbol,
		BaseReserve:  cfg.InitialBaseReserve,
		QuoteReserve: cfg.InitialQuoteReserve,
		FeeRate:      cfg.FeeRate,
	})
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	poolMetrics, err := metrics.New(registry, cfg.BaseSymbol, cfg.QuoteSymbol)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	tradeService := service.NewTradeService(logger.With("component", "trade-service"), pool, auditSink, poolMetrics)
	app := handler.NewApp(handler.RouterConfig{
		Logger:          logger,
		Service:         tradeService,
		AuthSecret:      []byte(cfg.AuthSecret),
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		Gatherer:        registry,
	})

	logger.Info("pool ready",
		"base", cfg.BaseSymbol, "base_reserve", cfg.InitialBaseReserve.String(),
		"quote", cfg.QuoteSymbol, "quote_reserve", cfg.InitialQuoteReserve.String(),
		"fee_rate", cfg.FeeRate.String(), "addr", cfg.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("shutdown incomplete", "err", err)
	}
	return nil
}
