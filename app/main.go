package main

import (
	"context"
	"errors"
	"luxefurnish/config"
	"luxefurnish/delivery"
	"luxefurnish/domain"
	"luxefurnish/middleware"
	"luxefurnish/repository"
	"luxefurnish/service"
	"luxefurnish/utils"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	utils.InitLogger(cfg.AppEnv, cfg.LogLevel)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Request bodies are typed; unknown fields are a client error.
	binding.EnableDecoderDisallowUnknownFields = true
	decimal.MarshalJSONWithoutQuotes = true
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v, domain.OrderStatuses)
	}

	// Boot DB
	db, err := config.BootDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	var redisClient *redis.Client
	if strings.EqualFold(cfg.OTP.Store, config.OTPStoreRedis) {
		redisClient, err = config.InitRedisDB(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		defer redisClient.Close()
	}

	// Init repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	var otpRepo domain.OTPRepository
	var limiter middleware.RateLimiter
	if redisClient != nil {
		otpRepo = repository.NewOTPRedisRepository(redisClient)
		limiter = middleware.NewRedisRateLimiter(redisClient)
	} else {
		otpRepo = repository.NewOTPMemoryRepository()
		log.Warn().Msg("OTP_STORE=memory, codes are lost on restart and rate limiting is disabled")
	}

	var storage domain.FileStorage
	if strings.EqualFold(cfg.Upload.Driver, config.UploadDriverS3) {
		storage, err = repository.NewS3Storage(context.Background(), repository.S3StorageConfig{
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			Bucket:       cfg.S3.Bucket,
			Region:       cfg.S3.Region,
			BaseEndpoint: cfg.S3.BaseEndpoint,
			PublicURL:    cfg.S3.PublicURL,
		})
	} else {
		storage, err = repository.NewDiskStorage(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to init upload storage")
	}

	var events domain.OrderEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := repository.NewKafkaOrderPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		events = kafkaPublisher
	} else {
		events = repository.NewNoopOrderPublisher()
	}

	mailer := utils.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)

	// Init services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.BcryptCost)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, events)
	otpService := service.NewOTPService(otpRepo, orderRepo, mailer, events, cfg.OTP.TTL)
	uploadService := service.NewUploadService(storage)

	// Init Gin
	app := gin.New()
	app.Use(middleware.Metrics())
	config.InitMiddleware(app, cfg)

	limit := middleware.RateLimiterConfig{
		RequestsPerWindow: cfg.RateLimit.Requests,
		WindowDuration:    cfg.RateLimit.Window,
		KeyPrefix:         "ratelimit",
	}
	jwtManager := authService.GetAccessTokenManager()

	delivery.NewHealthHandler(app)
	delivery.NewAuthHandler(app, authService, limiter, limit)
	delivery.NewProductHandler(app, productService, jwtManager)
	delivery.NewUserHandler(app, userService, jwtManager)
	delivery.NewOrderHandler(app, orderService, otpService, jwtManager, limiter, limit)
	delivery.NewUploadHandler(app, uploadService, jwtManager)
	if strings.EqualFold(cfg.Upload.Driver, config.UploadDriverDisk) {
		app.Static(cfg.Upload.URLPrefix, cfg.Upload.Dir)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.AppPort,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info().Msg("Server exited gracefully")
}
