// ABOUTME: Main entry point for the DocExtract API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"docextract-app-api/api"
	"docextract-app-api/api/handlers"
	"docextract-app-api/core/domain"
	"docextract-app-api/core/extraction"
	"docextract-app-api/core/interfaces"
	"docextract-app-api/infrastructure/cache/memory"
	"docextract-app-api/infrastructure/cache/redis"
	"docextract-app-api/infrastructure/extractor/docling"
	stdhttp "docextract-app-api/infrastructure/http/standard"
	logruslogger "docextract-app-api/infrastructure/logger/logrus"
	"docextract-app-api/infrastructure/storage/sqlite"
	"docextract-app-api/infrastructure/summarizer/gemini"
	"docextract-app-api/infrastructure/summarizer/openai"
	"docextract-app-api/pkg/config"
)

func main() {
	// Load .env when present, real environment wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting DocExtract API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"extractor":  cfg.Extractor.URL,
		"summarizer": cfg.Summarizer.Provider,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 0)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second, 0)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client for URL-sourced documents
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create extraction engine client
	perDocTimeout := time.Duration(cfg.Extraction.PerDocumentTimeout) * time.Second
	extractor, err := docling.NewClient(cfg.Extractor.URL, perDocTimeout)
	if err != nil {
		log.Fatalf("Failed to create extractor client: %v", err)
	}

	// Create extraction service
	service := extraction.NewService(deps, extractor, extraction.ServiceOptions{
		PerDocumentTimeout: perDocTimeout,
		MaxFileSizeMB:      cfg.Extraction.MaxFileSizeMB,
	})

	// Wire summarizer when configured
	switch cfg.Summarizer.Provider {
	case "openai":
		var opts []openai.Option
		if cfg.Summarizer.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Summarizer.Model))
		}
		summarizer, err := openai.NewClient(cfg.Summarizer.OpenAIAPIKey,
			time.Duration(cfg.Summarizer.TimeoutSeconds)*time.Second, opts...)
		if err != nil {
			log.Fatalf("Failed to create OpenAI summarizer: %v", err)
		}
		service.SetSummarizer(summarizer)
	case "gemini":
		summarizer, err := gemini.NewClient(context.Background(), cfg.Summarizer.GoogleAPIKey, cfg.Summarizer.Model)
		if err != nil {
			log.Fatalf("Failed to create Gemini summarizer: %v", err)
		}
		service.SetSummarizer(summarizer)
	}

	// Wire job storage
	jobStore, err := sqlite.NewJobStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to create job store: %v", err)
	}
	defer jobStore.Close()
	service.SetJobStorage(jobStore)

	// Create batch service
	batchService := extraction.NewBatchService(service, extraction.BatchOptions{
		MaxConcurrency: cfg.Extraction.MaxConcurrency,
		MaxBatchSize:   cfg.Extraction.MaxBatchSize,
	})

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	defaultFormat, _ := domain.ParseOutputFormat(cfg.Extraction.DefaultOutputFormat)
	extractHandler := handlers.NewExtractHandler(service, batchService, defaultFormat)
	extractHandler.RegisterRoutes(humaAPI)

	jobHandler := handlers.NewJobHandler(jobStore)
	jobHandler.RegisterRoutes(humaAPI)

	compareHandler := handlers.NewCompareHandler(service)
	compareHandler.RegisterRoutes(humaAPI)

	languagesHandler := handlers.NewLanguagesHandler()
	languagesHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler("1.0.0")
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // batch extractions can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
