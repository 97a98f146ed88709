package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/actuallystonmai/basket-gateway/internal/cache"
	"github.com/actuallystonmai/basket-gateway/internal/config"
	"github.com/actuallystonmai/basket-gateway/internal/handler"
	"github.com/actuallystonmai/basket-gateway/internal/logger"
	"github.com/actuallystonmai/basket-gateway/internal/model"
	"github.com/actuallystonmai/basket-gateway/internal/router"
	"github.com/actuallystonmai/basket-gateway/internal/service"
	"github.com/actuallystonmai/basket-gateway/seeds"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const version = "1.0.0"

func main() {
	// .env is optional
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "basket-gateway"})
	log := logger.Named("main")
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn().Err(envErr).Msg("error loading .env file")
	}

	ctx := context.Background()

	// ------------ Sample data ---------------
	dataset, err := seeds.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load sample dataset")
	}

	// ------------ Redis (optional) ---------------
	var responseCache service.ResponseCache
	if cfg.CacheEnabled() {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to parse REDIS_URL")
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		c := cache.NewCache(rdb, cfg.CacheTTL)
		if err := waitForRedis(ctx, c); err != nil {
			_ = rdb.Close()
			log.Fatal().Err(err).Msg("redis not ready")
		}
		responseCache = c
		log.Info().Dur("ttl", cfg.CacheTTL).Msg("response cache enabled")
	}

	// ---------------- Server --------------------
	upstream := model.NewClient(cfg.MLServiceURL, &http.Client{Timeout: cfg.UpstreamTimeout})
	svc := service.NewService(upstream, responseCache)
	h := handler.NewHandler(svc, dataset, version)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.Setup(h, router.Options{
			APIPrefix:      cfg.APIPrefix,
			AllowedOrigins: cfg.AllowedOrigins,
			SlowRequest:    cfg.SlowRequest,
			RequestTimeout: cfg.RequestTimeout,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("ml_service_url", cfg.MLServiceURL).
			Str("api_prefix", cfg.APIPrefix).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}
	log.Info().Msg("server exited properly")
}

func waitForRedis(ctx context.Context, c *cache.Cache) error {
	for i := 0; i < 30; i++ {
		if err := c.Ping(ctx); err == nil {
			return nil
		}
		logger.Named("main").Info().Msgf("waiting for redis... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("redis connection timeout after 30s")
}
