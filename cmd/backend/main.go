// Package main provides the entry point for the Voice Talent site backend.
//
//	@title			Voice Talent Backend API
//	@version		1.0.0
//	@description	Backend for a voice talent portfolio site: content management, contact messages, media files and visitor analytics.
//
//	@contact.name	Voice Talent Support
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
package main

import (
	"VoiceTalent-Backend/internal/auth"
	"VoiceTalent-Backend/internal/config"
	"VoiceTalent-Backend/internal/database"
	httpHandler "VoiceTalent-Backend/internal/handler/http"
	"VoiceTalent-Backend/internal/media"
	"VoiceTalent-Backend/internal/repository/postgres"
	"VoiceTalent-Backend/internal/service"
	"VoiceTalent-Backend/internal/visitor"
	"VoiceTalent-Backend/pkg/logger"
	"VoiceTalent-Backend/pkg/useragent"
	"context"
	"fmt"
	lg "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "VoiceTalent-Backend/docs" // Import swagger docs
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	defer func() {
		if err := log.Sync(); err != nil {
			lg.Printf("ERROR: failed to sync zap logger: %v\n", err)
		}
	}()

	log.Info("starting voice talent backend", zap.String("env", cfg.Env))

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, log); err != nil {
			log.Error("failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations if enabled
	if cfg.Database.AutoMigrate {
		log.Info("running database migrations (auto_migrate: true)")
		if err := database.AutoMigrate(db, log); err != nil {
			log.Fatal("failed to run database migrations", zap.Error(err))
		}
	} else {
		log.Info("skipping database migrations (auto_migrate: false)")
	}

	// Seed default site documents if enabled
	if cfg.Database.SeedData {
		log.Info("seeding database with initial data (seed_data: true)")
		if err := database.SeedData(db, log); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
	} else {
		log.Info("skipping database seeding (seed_data: false)")
	}

	// Initialize User-Agent parser; the keyword fallback is used when the
	// regexes file is missing
	uaParser, err := useragent.NewParser(cfg.Analytics.RegexesPath, log)
	if err != nil {
		log.Warn("failed to initialize User-Agent parser, using fallback", zap.Error(err))
		uaParser = nil
	}

	// Initialize storage and services
	storage := postgres.New(db, log)
	analyticsService := service.NewAnalyticsService(storage, uaParser, log, cfg.Analytics.RecentDays)

	mailer := service.NewMailer(cfg.SMTP, service.DefaultMailerConfig(), log)
	mailer.Start()
	defer mailer.Stop()

	mediaManager, err := media.NewManager(cfg.Media.Root, log)
	if err != nil {
		log.Fatal("failed to initialize media manager", zap.Error(err))
	}

	// Auth: admin session cookie with JWT inside
	tokenSecret := cfg.Auth.TokenSecret
	if tokenSecret == "" {
		log.Warn("TOKEN_SECRET is not set, admin sessions will not survive restarts")
		tokenSecret = fmt.Sprintf("ephemeral-%d", time.Now().UnixNano())
	}
	tokenService := auth.NewTokenService(&auth.TokenConfig{
		SecretKey:  []byte(tokenSecret),
		SessionTTL: cfg.Auth.SessionTTL,
		Issuer:     "VoiceTalent-Backend",
	})
	passwordService := auth.NewPasswordService()

	secureCookies := cfg.Env == "production"
	authHandlers := auth.NewAuthHandlers(
		cfg.Admin,
		tokenService,
		passwordService,
		log,
		secureCookies,
		int(cfg.Auth.SessionTTL.Seconds()),
	)
	authMiddleware := auth.NewMiddleware(tokenService, log)
	visitorMiddleware := visitor.NewMiddleware(log, secureCookies)

	// Create HTTP server
	httpAPIServer := httpHandler.NewServer(
		storage,
		analyticsService,
		mailer,
		mediaManager,
		authHandlers,
		authMiddleware,
		visitorMiddleware,
		cfg.Media.Root,
		cfg.Media.AdminDir,
		log,
	)
	httpMux := httpAPIServer.SetupRoutes()

	addr := fmt.Sprintf(":%d", cfg.HTTPServer.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      httpMux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("starting HTTP server", zap.String("address", addr))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down voice talent backend...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown HTTP server", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}
}
