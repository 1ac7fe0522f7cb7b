package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jstrehler/portfolio-backend/config"
	"github.com/jstrehler/portfolio-backend/data"
	"github.com/jstrehler/portfolio-backend/handlers"
	"github.com/jstrehler/portfolio-backend/logger"
	"github.com/jstrehler/portfolio-backend/router"
	"github.com/jstrehler/portfolio-backend/services"
	"github.com/jstrehler/portfolio-backend/store"
	"github.com/jstrehler/portfolio-backend/store/memory"
	redisstore "github.com/jstrehler/portfolio-backend/store/redis"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	// Load and validate configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load the embedded site catalog
	catalog, err := data.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load content catalog: %v", err)
	}
	log.Infow("Content catalog loaded",
		"photos", len(catalog.Photos),
		"projects", len(catalog.Projects),
		"roadmap_items", len(catalog.RoadmapItems))

	// Rate-limit store: process-local by default, Redis when a shared view
	// across instances is required.
	var rateLimitStore store.RateLimitStore
	var redisClient *goredis.Client
	var limiterTable interface{ Len() int }

	if cfg.Redis.Enabled {
		redisOptions := &goredis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}
		if cfg.Redis.UseTLS {
			redisOptions.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}
		redisClient = goredis.NewClient(redisOptions)
		rateLimitStore = redisstore.NewRateLimitStore(redisClient)
	} else {
		memoryStore := memory.NewRateLimitStore()
		rateLimitStore = memoryStore
		limiterTable = memoryStore
	}

	// Services
	rateLimitService := services.NewRateLimitService(rateLimitStore, &cfg.RateLimit)
	healthService := services.NewHealthService(redisClient, limiterTable, cfg.Server.Version)

	var emailSender handlers.EmailSender
	if cfg.Email.Enabled {
		emailSender = services.NewEmailService(&cfg.Email)
	} else {
		log.Info("Email delivery disabled; accepted submissions are logged only")
	}

	// Handlers
	feedbackHandler := handlers.NewFeedbackHandler(emailSender)
	contentHandler := handlers.NewContentHandler(memory.NewContentStore(catalog))
	healthHandler := handlers.NewHealthHandler(healthService)

	r := router.SetupRouter(router.Dependencies{
		Config:          cfg,
		RateLimiter:     rateLimitService,
		FeedbackHandler: feedbackHandler,
		ContentHandler:  contentHandler,
		HealthHandler:   healthHandler,
		Logger:          log,
	})

	if len(cfg.Server.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
			log.Fatalf("Failed to set trusted proxies: %v", err)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
