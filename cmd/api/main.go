package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/platform/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/cache"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("portfolio-api", "", "info", false)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.App.Name, cfg.App.Version, cfg.App.LogLevel, cfg.IsDevelopment())
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	stores, err := bootstrap.OpenStores(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer stores.Close()
	log.Info().Str("driver", cfg.Database.Driver).Msg("storage ready")

	var (
		rc *goredis.Client
		c  cache.Cache = cache.Noop{}
	)
	if cfg.Cache.RedisURL != "" {
		rc, err = redis.NewClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			// Listings still work uncached.
			log.Warn().Err(err).Msg("redis unavailable, caching disabled")
		} else {
			defer rc.Close()
			c = cache.NewRedis(rc, cfg.Cache.TTL)
			log.Info().Dur("ttl", cfg.Cache.TTL).Msg("listing cache enabled")
		}
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSAllowedOrigins,
		Logger:      log,
		Stores:      stores,
		Redis:       rc,
		Cache:       c,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server exited")
	return nil
}
