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
	"time"

	"dare/enterprisehub/internal/api"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/config"
	"dare/enterprisehub/internal/db"
	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/metrics"
	"dare/enterprisehub/internal/routes"
	"dare/enterprisehub/internal/workers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(os.Getenv("HUB_CONFIG"))
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv, cfg.LogLevel); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Enterprise Hub starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.Database.Driver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	gdb, sqlDB, err := db.Connect(cfg)
	if err != nil {
		logging.Fatal("Failed to connect to database", "error", err)
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, gdb); err != nil {
		logging.Fatal("Failed to migrate schema", "error", err)
	}

	cache, redisClient := initCache(cfg)
	defer cache.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsReg := metrics.NewMetricsRegistry(reg)

	deps := api.InitDependencies(gdb, sqlDB, cache, redisClient, metricsReg, api.Options{
		JWTSecret:     cfg.Auth.JWTSecret,
		TokenTTL:      cfg.TokenTTL(),
		DashboardTTL:  cfg.DashboardTTL(),
		PermissionTTL: cfg.PermissionTTL(),
	})

	if err := deps.Services.RBAC.SeedDefaults(ctx); err != nil {
		logging.Fatal("Failed to seed RBAC defaults", "error", err)
	}

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	workers.InitWorkers(workerCtx, deps.Services.Dashboard, cfg.DashboardRefresh())

	router := routes.RegisterRoutes(deps, routes.RouterOptions{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Gatherer:       reg,
		UpSince:        time.Now(),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "port", cfg.HTTP.Port, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logging.Info("Shutting down")
	stopWorkers()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err)
	}
}

// initCache prefers Redis and falls back to the in-process cache when Redis
// is not configured or unreachable.
func initCache(cfg *config.Config) (common.CacheInterface, *redis.Client) {
	if cfg.Redis.Host == "" {
		logging.Info("Using in-memory cache")
		return common.NewCacheService(5*time.Minute, 10*time.Minute), nil
	}

	client := common.NewRedisClient(cfg.Redis)
	cache, err := common.NewRedisCacheService(client)
	if err != nil {
		logging.Warn("Redis unavailable, using in-memory cache", "error", err)
		_ = client.Close()
		return common.NewCacheService(5*time.Minute, 10*time.Minute), nil
	}
	logging.Info("Using Redis cache", "host", cfg.Redis.Host)
	return cache, client
}
