package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerview/backend/internal/application/dashboard"
	"github.com/ledgerview/backend/internal/infrastructure/cache"
	"github.com/ledgerview/backend/internal/infrastructure/config"
	"github.com/ledgerview/backend/internal/infrastructure/logger"
	"github.com/ledgerview/backend/internal/infrastructure/persistence"
	"github.com/ledgerview/backend/internal/interfaces/http/handler"
	"github.com/ledgerview/backend/internal/interfaces/http/middleware"
	"github.com/ledgerview/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting LedgerView Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize dashboard cache, Redis first with optional in-memory fallback
	cacheFactory := cache.NewMetricsCacheFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.Cache.AllowInMemoryFallback),
	)
	metricsCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to initialize dashboard cache", zap.Error(err))
	}
	defer func() {
		if err := metricsCache.Close(); err != nil {
			log.Error("Error closing cache", zap.Error(err))
		}
	}()

	// Initialize repositories
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)

	// Initialize application services
	metricsService := dashboard.NewMetricsService(invoiceRepo, metricsCache, log)
	metricsService.SetCacheTTL(cfg.Cache.TTL)
	ledgerService := dashboard.NewLedgerService(invoiceRepo, customerRepo, log)
	customerService := dashboard.NewCustomerService(customerRepo, log)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(metricsService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	customerHandler := handler.NewCustomerHandler(customerService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom binding validators
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Register routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(dashboardHandler)
	r.Register(ledgerHandler)
	r.Register(customerHandler)
	r.Register(systemHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
