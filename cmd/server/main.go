package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/yummin/backend/internal/application/cart"
	checkoutapp "github.com/yummin/backend/internal/application/checkout"
	dashboardapp "github.com/yummin/backend/internal/application/dashboard"
	ledgerapp "github.com/yummin/backend/internal/application/ledger"
	"github.com/yummin/backend/internal/infrastructure/config"
	"github.com/yummin/backend/internal/infrastructure/logger"
	"github.com/yummin/backend/internal/infrastructure/persistence"
	"github.com/yummin/backend/internal/interfaces/http/handler"
	"github.com/yummin/backend/internal/interfaces/http/middleware"
	"github.com/yummin/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Yummin Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("path", cfg.Database.Path))

	// Initialize repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	cartStore := persistence.NewGormCartStore(db.DB)

	// Initialize application services
	cartService := cartapp.NewService(context.Background(), cartStore, log)
	checkoutService := checkoutapp.NewService(
		cartService,
		orderRepo,
		checkoutapp.Config{
			WhatsAppPhone: cfg.Store.WhatsAppPhone,
			OrderIDPrefix: cfg.Store.OrderIDPrefix,
		},
		rand.New(rand.NewSource(time.Now().UnixNano())),
		log,
	)
	ledgerService := ledgerapp.NewService(orderRepo, log)
	dashboardService := dashboardapp.NewService(orderRepo, log)

	// Set gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize gin engine with middleware
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	// Health check outside the versioned API group
	systemHandler := handler.NewSystemHandler()
	engine.GET("/healthz", systemHandler.Health)

	// Register API routes
	router.NewRouter(engine).
		Register(handler.NewMenuHandler()).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewCheckoutHandler(checkoutService)).
		Register(handler.NewOrderHandler(ledgerService, cfg.Store.OrderIDPrefix, cfg.Store.SeedOrderCount)).
		Register(handler.NewDashboardHandler(dashboardService)).
		Register(handler.NewStoreHandler()).
		Register(systemHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
