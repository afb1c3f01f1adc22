package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lease-amortizer/config"
	httpLayer "lease-amortizer/http"
	"lease-amortizer/repository"
	"lease-amortizer/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.Debug)

	ctx := context.Background()

	leaseRepo, closeRepo := newLeaseRepository(ctx, cfg)
	defer closeRepo()

	cache, closeCache := newCache(ctx, cfg)
	defer closeCache()

	leaseService := service.NewLeaseService(leaseRepo, cache)
	leaseHandler := httpLayer.NewLeaseHandler(leaseService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(leaseHandler, rateLimiter, cfg.CORS.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("lease API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("error starting server", "error", err)
		return
	case <-quit:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("error during server shutdown", "error", err)
	}

	slog.Info("server exited")
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// newLeaseRepository uses Postgres when DATABASE_URL is set and the
// in-memory history otherwise.
func newLeaseRepository(ctx context.Context, cfg *config.Config) (repository.LeaseRepository, func()) {
	if cfg.DatabaseURL == "" {
		return repository.NewLeaseRepositoryMemory(), func() {}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	repo, err := repository.NewPostgresLeaseRepository(connectCtx, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("postgres unavailable, using in-memory history", "error", err)
		return repository.NewLeaseRepositoryMemory(), func() {}
	}
	slog.Info("using postgres calculation history")
	return repo, repo.Close
}

// newCache uses Redis when REDIS_ADDR is set and reachable and the
// in-memory cache otherwise.
func newCache(ctx context.Context, cfg *config.Config) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.CacheTTL), func() {}
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := cache.Ping(pingCtx); err != nil {
		slog.Warn("redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		_ = cache.Close()
		return repository.NewMemoryCache(cfg.CacheTTL), func() {}
	}
	slog.Info("using redis cache", "addr", cfg.RedisAddr)
	return cache, func() { _ = cache.Close() }
}
