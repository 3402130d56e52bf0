// File: tripdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripdesk/config"
	"tripdesk/handlers"
	"tripdesk/routes"
	"tripdesk/services/assistant"
	"tripdesk/services/pega"
	"tripdesk/services/speech"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.PegaURL == "" {
		logger.Sugar().Fatal("main: PEGA_URL is not configured")
	}
	if config.AppConfig.GeminiAPIKey == "" {
		logger.Sugar().Fatal("main: GEMINI_API_KEY is not configured")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Pega backend: one credential store, one writer (the authenticator),
	// many readers (the client).
	credStore := pega.NewCredentialStore()
	authenticator := pega.NewAuthenticator(config.AppConfig.PegaURL, credStore)
	pegaClient := pega.NewClient(config.AppConfig.PegaURL, config.AppConfig.PegaCaseTypeID, credStore)

	// Assistant: tool registry over the Pega client, Gemini behind it.
	toolRegistry := assistant.NewRegistry(pegaClient)
	geminiClient, err := assistant.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey, toolRegistry.Declarations())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	notifier := speech.NewNotifier(config.AppConfig.TTSEnabled, config.AppConfig.GoogleServiceAccountFile)

	assistantService := &assistant.DefaultService{
		Model:  geminiClient,
		Tools:  toolRegistry,
		Speech: notifier,
	}

	sessions := utils.NewSessionSet()
	authHandler := handlers.NewAuthHandler(authenticator, sessions)
	chatHandler := handlers.NewChatHandler(assistantService)
	bookingHandler := handlers.NewBookingHandler(pegaClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessions,

		LoginHandler: authHandler.LoginHandler,

		ChatHandler: chatHandler.ChatHandler,

		CreateBookingHandler:    bookingHandler.CreateBookingHandler,
		GetBookingHandler:       bookingHandler.GetBookingHandler,
		ListDestinationsHandler: bookingHandler.ListDestinationsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
