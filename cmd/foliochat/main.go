package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mahanteshk/foliochat/internal/api"
	"github.com/mahanteshk/foliochat/internal/api/site"
	"github.com/mahanteshk/foliochat/internal/config"
	"github.com/mahanteshk/foliochat/internal/logger"
	"github.com/mahanteshk/foliochat/internal/repository"
	"github.com/mahanteshk/foliochat/internal/service"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on config file and environment")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zlog := logger.New(cfg.Log.Path, cfg.Log.Production)
	defer zlog.Sync()

	// Initialize storage
	store := repository.NewMemoryStore()

	// Initialize services
	chatService := service.NewChatService(store, service.NewResolver(), zlog)
	contactService := service.NewContactService(store, zlog)
	portfolioService := service.NewPortfolioService(store)

	// Setup router
	siteHandler := site.NewHandler(chatService, contactService, portfolioService)
	router := api.SetupRouter(siteHandler, zlog, api.RouterConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		DocumentsDir: cfg.Documents.Path,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		zlog.Info("Starting FolioChat server",
			zap.String("address", cfg.Address()),
			zap.String("base_url", cfg.Server.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exited")
}
