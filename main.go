// File: staynest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staynest/config"
	"staynest/database"
	"staynest/database/repository"
	"staynest/handlers"
	"staynest/middleware"
	"staynest/routes"
	"staynest/services/auth"
	ai "staynest/services/intelligence"
	"staynest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	database.InitDB()
	authCache := utils.GetAuthCacheClient()
	utils.StartHealthMonitor(rootCtx, authCache, database.MongoClient, time.Minute)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.TrustedProxyList()); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(middleware.RequestIDMiddleware())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	records := repository.NewMongoRecordStore(database.DB(), logger)

	// services.
	if config.AppConfig.JWTSecret == "" {
		logger.Warn("main: JWT_SECRET is empty, every chat request will be treated as a guest")
	}
	revocations := auth.NewRedisRevocationStore(authCache, utils.RevokedTokenTTL)
	verifier := auth.NewJWTVerifier(config.AppConfig.JWTSecret, revocations, logger)

	// A nil generator puts the assistant in its canned-reply mode.
	var generator ai.TextGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(rootCtx, config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Fatal("main: failed to initialize Gemini client", zap.Error(err))
		}
		defer gemini.Close()
		generator = gemini
	} else {
		logger.Warn("main: GEMINI_API_KEY is empty, assistant will answer with a canned reply")
	}

	aiSvc := ai.NewDefaultAssistantService(generator, verifier, records, ai.Options{
		Models:          config.AppConfig.ModelOrder(),
		MaxOutputTokens: int32(config.AppConfig.AIMaxOutputTokens),
		Safety:          ai.SafetyBlockOnlyHigh,
		ProviderTimeout: config.AppConfig.AIProviderTimeout,
		LookupTimeout:   config.AppConfig.AILookupTimeout,
	}, logger.Named("assistant"))

	aiHandler := handlers.NewAssistantHandler(aiSvc)
	authHandler := handlers.NewAuthHandler(verifier, revocations)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AIChatHandler:  aiHandler.HandleChat,
		SignOutHandler: authHandler.SignOutHandler,
	}

	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.AllowedOrigins())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}
	_ = authCache.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
