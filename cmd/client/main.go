package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bookstore-client/internal/application/service"
	"github.com/TemirB/bookstore-client/internal/cache"
	"github.com/TemirB/bookstore-client/internal/client"
	"github.com/TemirB/bookstore-client/internal/config"
	"github.com/TemirB/bookstore-client/internal/logger"
	"github.com/TemirB/bookstore-client/internal/observability"
	"github.com/TemirB/bookstore-client/internal/replica"
	"github.com/TemirB/bookstore-client/internal/shell"
)

func main() {
	cfg := config.Load()

	// Логгер
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Метрики
	session := observability.NewInmem(256)
	var metrics observability.Metrics = session
	if cfg.MetricsAddr != "" {
		prom := observability.NewProm("bookstore_client")
		metrics = observability.Multi{session, prom}
		go serveMetrics(ctx, cfg.MetricsAddr, prom.Handler(), log)
	}

	// Кэш
	store, err := cache.New(cfg.CacheCap, log.Named("cache"))
	if err != nil {
		log.Fatal("cache init failed", zap.Error(err))
	}

	// Реплики
	catalogReplicas, err := replica.New("catalog", cfg.Replicas.Catalog, log.Named("replica"))
	if err != nil {
		log.Fatal("catalog replicas", zap.Error(err))
	}
	orderReplicas, err := replica.New("order", cfg.Replicas.Order, log.Named("replica"))
	if err != nil {
		log.Fatal("order replicas", zap.Error(err))
	}

	// Сервис
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	svc := service.NewService(
		store,
		client.NewCatalog(catalogReplicas, httpClient, log.Named("catalog"), metrics),
		client.NewOrder(orderReplicas, httpClient, log.Named("order"), metrics),
		log.Named("service"),
		metrics,
	)

	log.Debug("client started",
		zap.Strings("catalog_replicas", cfg.Replicas.Catalog),
		zap.Strings("order_replicas", cfg.Replicas.Order),
		zap.Int("cache_cap", cfg.CacheCap),
	)

	err = shell.New(svc, session, os.Stdin, os.Stdout, log.Named("shell")).Run(ctx)
	log.Debug("cache at exit",
		zap.Int("entries", store.Len()),
		zap.Strings("keys", store.Keys()),
	)
	if err != nil {
		log.Error("shell stopped", zap.Error(err))
		os.Exit(1)
	}
}

func serveMetrics(ctx context.Context, addr string, h http.Handler, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("metrics server failed", zap.Error(err))
	}
}
