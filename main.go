// File: valetpro/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valetpro/config"
	"valetpro/handlers"
	"valetpro/middleware"
	"valetpro/models"
	"valetpro/routes"
	ai "valetpro/services/intelligence"
	"valetpro/services/valet"
	"valetpro/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Message generator. No key means offline templates, not a failure.
	var text ai.TextGenerator
	if key := config.AppConfig.GeminiKey(); key != "" {
		gemini, err := ai.NewGeminiClient(context.Background(), key, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Errorf("main: Gemini client unavailable, using fallback messages: %v", err)
			text = ai.NewUnavailableClient(err)
		} else {
			defer gemini.Close()
			text = gemini
		}
	}
	generator := ai.NewMessageGenerator(text, config.AppConfig.GeminiTimeout, logger.Named("messages"))

	// Optional Redis status feed.
	var publisher valet.EventPublisher = valet.NopPublisher{}
	if err := utils.InitEventsRedis(); err != nil {
		logger.Sugar().Warnf("main: status feed disabled: %v", err)
	} else if client := utils.GetEventsClient(); client != nil {
		defer client.Close()
		publisher = valet.NewRedisEventPublisher(client, config.AppConfig.EventsChannel)
		logger.Sugar().Infof("main: publishing status events on %s", config.AppConfig.EventsChannel)
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.GetEventsClient(), time.Minute)

	driver := models.DriverRecord{
		Name:         config.AppConfig.DriverName,
		MobileNumber: config.AppConfig.DriverMobile,
		AvatarURL:    config.AppConfig.DriverAvatarURL,
	}
	sessionService := valet.NewDefaultSessionService(generator, publisher, driver, logger.Named("session"))
	sessionHandler := handlers.NewSessionHandler(sessionService, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(sessionHandler))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (messages: %s)...", srv.Addr, generator.Mode())
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	sessionService.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
