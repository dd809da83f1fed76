package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/bookstore-client/internal/backend"
	"github.com/TemirB/bookstore-client/internal/config"
	"github.com/TemirB/bookstore-client/internal/logger"
	"github.com/TemirB/bookstore-client/internal/observability"
)

// Sandbox catalog and order replicas sharing one in-memory inventory.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	var metrics observability.Metrics = observability.NewNoop()
	var servers []*http.Server
	if cfg.MetricsAddr != "" {
		prom := observability.NewProm("bookstore_backend")
		metrics = prom
		mux := http.NewServeMux()
		mux.Handle("/metrics", prom.Handler())
		servers = append(servers, newServer(cfg.MetricsAddr, mux))
	}

	h := backend.NewHandler(backend.NewInventory(backend.DefaultBooks()), log)
	for i, addr := range cfg.Backend.CatalogAddrs {
		name := fmt.Sprintf("catalog-%d", i+1)
		servers = append(servers, newServer(addr, backend.NewCatalogRouter(h, name, metrics)))
	}
	for i, addr := range cfg.Backend.OrderAddrs {
		name := fmt.Sprintf("order-%d", i+1)
		servers = append(servers, newServer(addr, backend.NewOrderRouter(h, name, metrics)))
	}

	var wg sync.WaitGroup
	for _, srv := range servers {
		wg.Add(1)
		go func(srv *http.Server) {
			defer wg.Done()
			log.Info("replica listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal("listen", zap.String("addr", srv.Addr), zap.Error(err))
			}
		}(srv)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("server shutdown", zap.String("addr", srv.Addr), zap.Error(err))
		}
	}
	wg.Wait()
	log.Info("sandbox stopped")
}

func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
