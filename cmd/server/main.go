package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/medigas/backend/internal/application/catalog"
	orderapp "github.com/medigas/backend/internal/application/order"
	settingsapp "github.com/medigas/backend/internal/application/settings"
	"github.com/medigas/backend/internal/domain/catalog"
	"github.com/medigas/backend/internal/domain/player"
	"github.com/medigas/backend/internal/domain/settings"
	"github.com/medigas/backend/internal/infrastructure/config"
	"github.com/medigas/backend/internal/infrastructure/logger"
	"github.com/medigas/backend/internal/infrastructure/persistence"
	"github.com/medigas/backend/internal/interfaces/http/handler"
	"github.com/medigas/backend/internal/interfaces/http/middleware"
	"github.com/medigas/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// promoVideoDuration is the length of the bundled promo clip in seconds
const promoVideoDuration = 90

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

	log.Info("Starting MediGas Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database ready", zap.String("path", cfg.Database.Path))

	// Build the catalog store
	store, err := catalog.NewDefaultStore()
	if err != nil {
		log.Fatal("Failed to build catalog", zap.Error(err))
	}

	// Initialize repositories
	settingsRepo := persistence.NewGormSettingsRepository(db.DB, settings.StorageKey)

	// Initialize application services
	cardService := catalogapp.NewCardService(store)
	orderService := orderapp.NewService(store, cfg.Submission.Delay, log)
	settingsService := settingsapp.NewService(settingsRepo, log)

	// The promo player runs against a simulated media surface
	playerSurface := player.NewSimulatedSurface(promoVideoDuration)
	playerController := player.NewController(playerSurface, log)

	// Set gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler.RegisterValidators()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.GET("/health", healthHandler(db))

	// Register domain handlers
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewCatalogHandler(cardService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewSettingsHandler(settingsService)).
		Register(handler.NewPlayerHandler(playerController)).
		Register(handler.NewPageHandler(cfg.App.Name, orderService))
	r.Setup()

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

	// A submission caught mid-flight is dropped rather than confirmed
	// against a closed page
	if orderService.Cancel() {
		log.Info("Dropped in-flight order submission")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
