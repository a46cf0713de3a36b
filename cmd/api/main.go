package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stayhub/stayhub/internal/adapters/cache"
	"github.com/stayhub/stayhub/internal/adapters/memory"
	"github.com/stayhub/stayhub/internal/api/handlers"
	"github.com/stayhub/stayhub/internal/api/middleware"
	"github.com/stayhub/stayhub/internal/api/routes"
	"github.com/stayhub/stayhub/internal/application/services"
	"github.com/stayhub/stayhub/internal/domain/providers"
	"github.com/stayhub/stayhub/internal/infrastructure/clients/redis"
	"github.com/stayhub/stayhub/internal/infrastructure/observability"
	"github.com/stayhub/stayhub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Optional Redis-backed response cache; the service runs without it
	var cacheProvider providers.CacheProvider
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			log.Info().Msg("Redis client initialized")
		}
	}

	// All state lives in the in-memory object store
	store := memory.NewStore()

	userService := services.NewUserService(store)
	amenityService := services.NewAmenityService(store)
	placeService := services.NewPlaceService(store)
	reviewService := services.NewReviewService(store)

	userHandler := handlers.NewUserHandler(userService)
	amenityHandler := handlers.NewAmenityHandler(amenityService)
	placeHandler := handlers.NewPlaceHandler(placeService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		log.Info().Msg("response cache middleware initialized")
	}

	router := routes.NewRouter(
		userHandler,
		amenityHandler,
		placeHandler,
		reviewHandler,
		cacheMiddleware,
		metrics,
	)
	handler := router.SetupRoutes()

	server := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
