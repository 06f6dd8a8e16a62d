package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/finplanner/finplanner/internal/adapter/http"
	"github.com/finplanner/finplanner/internal/adapter/http/handler"
	"github.com/finplanner/finplanner/internal/adapter/repository/memory"
	redisRepo "github.com/finplanner/finplanner/internal/adapter/repository/redis"
	"github.com/finplanner/finplanner/internal/infrastructure/config"
	"github.com/finplanner/finplanner/internal/infrastructure/llm"
	"github.com/finplanner/finplanner/internal/infrastructure/logging"
	"github.com/finplanner/finplanner/internal/infrastructure/redis"
	"github.com/finplanner/finplanner/internal/usecase"
	redislib "github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = logger

	ctx := context.Background()

	// Connect to Redis when configured; fall back to in-process storage.
	var redisClient *redislib.Client
	var reportCache usecase.Cache
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		reportCache = redisRepo.NewCache(redisClient)
		logger.Info().Msg("connected to redis")
	} else {
		reportCache = memory.NewCache()
		logger.Info().Msg("redis not configured, using in-memory cache")
	}

	// Text generator is optional; without it reports carry deterministic
	// commentary only.
	var generator usecase.TextGenerator
	if cfg.LLMAPIKey != "" {
		generator = llm.NewClient(llm.Config{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
			Timeout: cfg.LLMTimeout,
		}, logger)
		logger.Info().Str("model", cfg.LLMModel).Msg("text generator enabled")
	}

	// Initialize repositories
	sessionStore := memory.NewSessionStore(cfg.SessionTTL)
	idGen := memory.NewULIDGenerator()

	// Initialize use cases
	plannerUC := usecase.NewPlannerUseCase()
	advisorUC := usecase.NewAdvisorUseCase()
	projectorUC := usecase.NewProjectorUseCase(plannerUC, advisorUC)
	adviceUC := usecase.NewAdviceUseCase(plannerUC, advisorUC, generator, reportCache, sessionStore, idGen, cfg.AdviceCacheTTL, logger)

	// Initialize handlers
	payoffHandler := handler.NewPayoffHandler(plannerUC)
	savingsHandler := handler.NewSavingsHandler(advisorUC)
	scenarioHandler := handler.NewScenarioHandler(projectorUC)
	adviceHandler := handler.NewAdviceHandler(adviceUC)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PayoffHandler:   payoffHandler,
		SavingsHandler:  savingsHandler,
		ScenarioHandler: scenarioHandler,
		AdviceHandler:   adviceHandler,
		HealthHandler:   healthHandler,
		Logger:          logger,
		RateLimit:       cfg.RateLimit,
		RateLimitBurst:  cfg.RateLimitBurst,
	})

	// Expired sessions are purged in the background.
	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sessionStore.Cleanup()
			case <-cleanupDone:
				return
			}
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")
	close(cleanupDone)

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}
