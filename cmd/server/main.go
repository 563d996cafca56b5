package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsapp "github.com/mosslight/storefront/internal/application/analytics"
	catalogapp "github.com/mosslight/storefront/internal/application/catalog"
	contentapp "github.com/mosslight/storefront/internal/application/content"
	identityapp "github.com/mosslight/storefront/internal/application/identity"
	mediaapp "github.com/mosslight/storefront/internal/application/media"
	messagingapp "github.com/mosslight/storefront/internal/application/messaging"
	reviewapp "github.com/mosslight/storefront/internal/application/review"
	shopapp "github.com/mosslight/storefront/internal/application/shop"
	"github.com/mosslight/storefront/internal/infrastructure/auth"
	"github.com/mosslight/storefront/internal/infrastructure/cache"
	"github.com/mosslight/storefront/internal/infrastructure/config"
	"github.com/mosslight/storefront/internal/infrastructure/eventbus"
	"github.com/mosslight/storefront/internal/infrastructure/logger"
	"github.com/mosslight/storefront/internal/infrastructure/persistence"
	"github.com/mosslight/storefront/internal/infrastructure/storage"
	"github.com/mosslight/storefront/internal/infrastructure/telemetry"
	"github.com/mosslight/storefront/internal/interfaces/http/handler"
	"github.com/mosslight/storefront/internal/interfaces/http/middleware"
	"github.com/mosslight/storefront/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Mosslight storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing is optional; without a collector the app runs untraced.
	if cfg.Telemetry.Enabled {
		shutdownTracing, err := telemetry.InitTracing(context.Background(), &cfg.Telemetry, log)
		if err != nil {
			log.Warn("Failed to initialize tracing", zap.Error(err))
		} else {
			defer func() {
				_ = shutdownTracing(context.Background())
			}()
			log.Info("Tracing enabled",
				zap.String("collector", cfg.Telemetry.CollectorEndpoint))
		}
	}

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Redis backs the review summary cache; fall back to in-process
	// caching when it is unreachable so the storefront stays up.
	var (
		redisClient  *goredis.Client
		summaryCache reviewapp.SummaryCache
	)
	redisClient, err = cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory review summary cache", zap.Error(err))
		redisClient = nil
		summaryCache = cache.NewInMemoryReviewSummaryCache(cfg.Redis.CacheTTL)
	} else {
		summaryCache = cache.NewRedisReviewSummaryCache(redisClient, cfg.Redis.CacheTTL, log)
		defer func() {
			_ = redisClient.Close()
		}()
	}

	objectStorage, err := storage.NewS3ObjectStorage(&cfg.Storage,
		storage.WithLogger(log),
		storage.WithPresignExpiration(cfg.Storage.PresignExpiration),
	)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	if err := objectStorage.EnsureBucket(context.Background()); err != nil {
		log.Warn("Could not verify storage bucket", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	blogRepo := persistence.NewGormBlogRepository(db.DB)
	galleryRepo := persistence.NewGormGalleryRepository(db.DB)
	portfolioRepo := persistence.NewGormPortfolioRepository(db.DB)
	discussionRepo := persistence.NewGormDiscussionRepository(db.DB)
	socialRepo := persistence.NewGormSocialRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	eventRepo := persistence.NewGormEventRepository(db.DB)
	assetRepo := persistence.NewGormAssetRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	notificationService := messagingapp.NewNotificationService(notificationRepo, userRepo, log)
	messageService := messagingapp.NewMessageService(messageRepo, notificationService, log)

	// Order and review events fan out to notifications through the bus
	events := eventbus.NewInProcessBus(log)
	events.Subscribe(messagingapp.NewNotificationEventHandler(notificationService, log))

	shopUnitOfWork := persistence.NewShopUnitOfWork(db.DB)
	productService := catalogapp.NewProductService(productRepo)
	cartService := shopapp.NewCartService(cartRepo, productRepo)
	checkoutService := shopapp.NewCheckoutService(cartRepo, productRepo, shopUnitOfWork, events, log)
	orderService := shopapp.NewOrderService(orderRepo, events, log)
	reviewService := reviewapp.NewReviewService(reviewRepo, productRepo, summaryCache, events, log)
	blogService := contentapp.NewBlogService(blogRepo, log)
	showcaseService := contentapp.NewShowcaseService(galleryRepo, portfolioRepo, socialRepo)
	discussionService := contentapp.NewDiscussionService(discussionRepo)
	analyticsService := analyticsapp.NewAnalyticsService(eventRepo, log)
	mediaService := mediaapp.NewMediaService(assetRepo, objectStorage, log)

	systemHandler := handler.NewSystemHandler(db, redisClient, version)

	api := &router.StorefrontAPI{
		JWT:          jwtService,
		Auth:         handler.NewAuthHandler(authService),
		Product:      handler.NewProductHandler(productService),
		Cart:         handler.NewCartHandler(cartService),
		Order:        handler.NewOrderHandler(orderService, checkoutService),
		Review:       handler.NewReviewHandler(reviewService),
		Blog:         handler.NewBlogHandler(blogService),
		Showcase:     handler.NewShowcaseHandler(showcaseService),
		Discussion:   handler.NewDiscussionHandler(discussionService),
		Message:      handler.NewMessageHandler(messageService),
		Notification: handler.NewNotificationHandler(notificationService),
		Analytics:    handler.NewAnalyticsHandler(analyticsService),
		Media:        handler.NewMediaHandler(mediaService),
		System:       systemHandler,
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and access logs
	// carry it, then security headers, CORS, body limit, rate limit.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Probes live outside the versioned API
	engine.GET("/health", systemHandler.Health)
	engine.GET("/ready", systemHandler.Ready)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(api).
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
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
