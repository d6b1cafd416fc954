package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-platform/internal/auth"
	"blog-platform/internal/config"
	"blog-platform/internal/handler"
	"blog-platform/internal/infrastructure/cache"
	"blog-platform/internal/infrastructure/database"
	"blog-platform/internal/logger"
	"blog-platform/internal/mail"
	"blog-platform/internal/media"
	"blog-platform/internal/metrics"
	"blog-platform/internal/middleware"
	"blog-platform/internal/repository"
	"blog-platform/internal/search"
	"blog-platform/internal/service"
	"blog-platform/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Setup(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	if cfg.AutoMigrate {
		version, err := database.Migrate(cfg.DatabaseURL(), cfg.MigrationsDir)
		if err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}
		logger.Info("Database schema ready", slog.Uint64("version", uint64(version)))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	redisStore, err := cache.NewRedisStore(cfg.RedisURL)
	if err != nil {
		logger.Fatal("Failed to connect to redis",
			slog.String("error", err.Error()))
	}
	defer redisStore.Close()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	contentRepo := repository.NewPostgresContentRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	reactionRepo := repository.NewPostgresReactionRepository(pool)
	bookmarkRepo := repository.NewPostgresBookmarkRepository(pool)
	ratingRepo := repository.NewPostgresRatingRepository(pool)
	analyticsRepo := repository.NewPostgresAnalyticsRepository(pool)
	resetRepo := repository.NewPostgresPasswordResetRepository(pool)

	// Search falls back to Postgres when Meilisearch is not configured or down
	var engine search.Engine
	if cfg.MeiliURL != "" {
		meili := search.NewMeili(cfg.MeiliURL, cfg.MeiliAPIKey)
		defer meili.Close()
		engine = meili
	}
	searchService := search.NewService(engine, contentRepo)
	if engine != nil {
		go func() {
			if _, err := searchService.ReindexAll(context.Background()); err != nil {
				logger.Warn("Search reindex failed", slog.String("error", err.Error()))
			}
		}()
	}

	mailer := mail.NewSender(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
		AppName:  cfg.SMTPFromName,
	})
	if !mailer.IsConfigured() {
		logger.Warn("SMTP not configured, outbound mail is disabled")
	}

	var mediaStore *media.Store
	if cfg.MinioEndpoint != "" {
		mediaStore, err = media.NewMinioStore(context.Background(), media.Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MediaPublicURL,
		})
		if err != nil {
			logger.Fatal("Failed to connect to object storage",
				slog.String("error", err.Error()))
		}
	} else {
		logger.Warn("MinIO not configured, media uploads are disabled")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(0)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	authService := service.NewAuthService(userRepo, resetRepo, hasher, tokens, redisStore, mailer, v, cfg.AppURL)
	contentService := service.NewContentService(contentRepo, searchService, v)
	commentService := service.NewCommentService(commentRepo, contentRepo, v)
	reactionService := service.NewReactionService(reactionRepo, contentRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, contentRepo)
	ratingService := service.NewRatingService(ratingRepo, contentRepo, v)
	analyticsService := service.NewAnalyticsService(analyticsRepo, contentRepo, redisStore)
	userService := service.NewUserService(userRepo, bookmarkRepo, reactionRepo)
	contactService := service.NewContactService(mailer, v, cfg.ContactToEmail)
	mediaService := service.NewMediaService(mediaStore)
	seedService := service.NewSeedService(userRepo, contentRepo, commentRepo, v, cfg.BatchSize)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	contentHandler := handler.NewContentHandler(contentService)
	commentHandler := handler.NewCommentHandler(commentService)
	engagementHandler := handler.NewEngagementHandler(reactionService, bookmarkService, ratingService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	seedHandler := handler.NewSeedHandler(seedService)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"database": pool,
		"redis":    redisStore,
	})

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth()

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(tokens, redisStore))
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.SignUp)
			authRoutes.POST("/signin", authHandler.SignIn)
			authRoutes.POST("/signout", requireAuth, authHandler.SignOut)
			authRoutes.POST("/reset/request", authHandler.RequestReset)
			authRoutes.POST("/reset/confirm", authHandler.ConfirmReset)
		}

		content := v1.Group("/content")
		{
			content.GET("", contentHandler.List)
			content.POST("", requireAuth, contentHandler.Create)
			content.GET("/featured", contentHandler.Featured)
			content.GET("/:id", contentHandler.Get)
			content.PUT("/:id", requireAuth, contentHandler.Update)
			content.DELETE("/:id", requireAuth, contentHandler.Delete)
			content.GET("/:id/related", contentHandler.Related)

			content.GET("/:id/comments", commentHandler.List)
			content.POST("/:id/comments", requireAuth, commentHandler.Create)

			content.GET("/:id/reactions", engagementHandler.Reactions)
			content.POST("/:id/reactions", requireAuth, engagementHandler.React)
			content.GET("/:id/bookmarks", engagementHandler.Bookmark)
			content.POST("/:id/bookmarks", requireAuth, engagementHandler.ToggleBookmark)
			content.GET("/:id/ratings", engagementHandler.Rating)
			content.POST("/:id/ratings", requireAuth, engagementHandler.Rate)

			content.POST("/:id/views", analyticsHandler.RecordView)
			content.GET("/:id/analytics", requireAuth, analyticsHandler.ContentAnalytics)
		}

		v1.DELETE("/comments/:id", requireAuth, commentHandler.Delete)

		analytics := v1.Group("/analytics")
		{
			analytics.POST("/time", analyticsHandler.RecordTimeOnPage)
			analytics.POST("/next", analyticsHandler.RecordNextContent)
		}

		dashboard := v1.Group("/dashboard", requireAuth)
		{
			dashboard.GET("/stats", analyticsHandler.DashboardStats)
			dashboard.GET("/export", analyticsHandler.Export)
		}

		v1.GET("/user/saved", userHandler.Saved)
		v1.GET("/users/search", userHandler.Search)
		v1.GET("/users/:id", userHandler.Profile)

		v1.POST("/contact", contactHandler.Send)
		v1.POST("/media", requireAuth, mediaHandler.Upload)
		v1.POST("/admin/seed", requireAuth, seedHandler.Seed)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Let pending index writes land before the pool closes
	logger.Info("Waiting for search index writes")
	searchService.Wait()

	logger.Info("Server exited")
}
