package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/handler"
	"github.com/nikolayk812/storefront/internal/pricing"
	"github.com/nikolayk812/storefront/internal/repository"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("newLogger: %v", err)
	}

	err = run(cfg, logger)
	if err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		seedProducts []domain.Product
		seedOrders   []domain.Order
	)
	if cfg.SeedData {
		seedProducts = repository.SeedProducts()
		seedOrders = repository.SeedOrders(cfg.Currency)
	}

	products := repository.NewProduct(seedProducts...)

	engine, err := pricing.NewEngine(products, cfg.Currency)
	if err != nil {
		return fmt.Errorf("pricing.NewEngine: %w", err)
	}

	orders, err := repository.NewOrder(engine, seedOrders...)
	if err != nil {
		return fmt.Errorf("repository.NewOrder: %w", err)
	}

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler.NewRouter(cfg, logger, products, orders),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.Environment),
			zap.String("currency", cfg.Currency.String()),
			zap.Bool("seed_data", cfg.SeedData))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server.ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}

	logger.Info("server exited")

	return nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)

	return zapCfg.Build()
}
