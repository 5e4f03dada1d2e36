package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/topogame/TalentFlow-sub001/internal/ai"
	"github.com/topogame/TalentFlow-sub001/internal/config"
	"github.com/topogame/TalentFlow-sub001/internal/db"
	httpHandlers "github.com/topogame/TalentFlow-sub001/internal/http/handlers"
	httpRouter "github.com/topogame/TalentFlow-sub001/internal/http/router"
	"github.com/topogame/TalentFlow-sub001/internal/logger"
	"github.com/topogame/TalentFlow-sub001/internal/repository"
	"github.com/topogame/TalentFlow-sub001/internal/service"
	"github.com/topogame/TalentFlow-sub001/internal/ws"
)

func main() {
	// Context for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: could not load configuration: %v", err)
	}

	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Database connection and migrations.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: could not connect to database: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: migrations failed: %v", err)
	}

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Repositories.
	userRepo := repository.NewUserRepository(dbConn)
	firmRepo := repository.NewFirmRepository(dbConn)
	positionRepo := repository.NewPositionRepository(dbConn)
	candidateRepo := repository.NewCandidateRepository(dbConn)
	processRepo := repository.NewProcessRepository(dbConn)
	auditRepo := repository.NewAuditRepository(dbConn)

	// Services.
	authService := service.NewAuthService(userRepo, tokenManager)

	var matchService *service.MatchService
	if cfg.AIBaseURL != "" && cfg.AIModel != "" {
		evaluator := ai.NewClient(cfg.AIBaseURL, cfg.AIModel)
		matchService = service.NewMatchService(positionRepo, candidateRepo, processRepo, evaluator, cfg.AICandidateLimit)
	} else {
		matchService = service.NewMatchService(positionRepo, candidateRepo, processRepo, nil, cfg.AICandidateLimit)
	}

	processService := service.NewProcessService(processRepo, candidateRepo, firmRepo, positionRepo, auditRepo)

	// Websockets.
	hub := ws.NewHub(ctx)
	go hub.Run()
	processService.SetNotifier(hub)

	// HTTP handlers.
	authHandler := httpHandlers.NewAuthHandler(authService)
	matchHandler := httpHandlers.NewMatchHandler(matchService)
	processHandler := httpHandlers.NewProcessHandler(processService)
	wsHandler := httpHandlers.NewWSHandler(hub, tokenManager)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	engine := httpRouter.SetupRouter(cfg, authHandler, matchHandler, processHandler, wsHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Stop the server on signal.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: http server shutdown error: %v", err)
		}
	}()

	log.Printf("main: HTTP server listening on port %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: server exited with error: %v", err)
	}
}

func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: error closing database: %v", err)
	}
}
