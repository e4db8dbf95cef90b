package main

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"

	"coderrBack/internal/config"
	"coderrBack/internal/handlers"
	"coderrBack/internal/repositories"
	"coderrBack/internal/services"
	"coderrBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	cfg        config.Config
	signingKey string

	db       *sql.DB
	redis    *redis.Client
	userRepo *repositories.UserRepository

	userHandler       *handlers.UserHandler
	profileHandler    *handlers.ProfileHandler
	offerHandler      *handlers.OfferHandler
	orderHandler      *handlers.OrderHandler
	reviewHandler     *handlers.ReviewHandler
	statisticsHandler *handlers.StatisticsHandler
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	profileRepo := repositories.ProfileRepository{DB: db}
	offerRepo := repositories.OfferRepository{DB: db}
	orderRepo := repositories.OrderRepository{DB: db}
	reviewRepo := repositories.ReviewRepository{DB: db}
	statisticsRepo := repositories.StatisticsRepository{DB: db}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Printf("token manager disabled: %v", err)
		tokenManager = nil
	}

	var storage *utils.S3Storage
	if cfg.S3.Enabled {
		storage, err = utils.NewS3Storage(cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Endpoint)
		if err != nil {
			errorLog.Printf("S3 storage disabled: %v", err)
			storage = nil
		}
	}

	// Services
	userService := &services.UserService{
		UserRepo:     &userRepo,
		ProfileRepo:  &profileRepo,
		TokenManager: tokenManager,
		SigningKey:   cfg.Auth.SigningKey,
	}
	profileService := &services.ProfileService{ProfileRepo: &profileRepo, UserRepo: &userRepo}
	offerService := &services.OfferService{OfferRepo: &offerRepo}
	orderService := &services.OrderService{OrderRepo: &orderRepo}
	reviewService := &services.ReviewService{ReviewsRepo: &reviewRepo, ProfileRepo: &profileRepo}
	statisticsService := &services.StatisticsService{
		StatisticsRepo: &statisticsRepo,
		OrderRepo:      &orderRepo,
		ProfileRepo:    &profileRepo,
		Redis:          redisClient,
	}

	return &application{
		errorLog:   errorLog,
		infoLog:    infoLog,
		cfg:        cfg,
		signingKey: cfg.Auth.SigningKey,
		db:         db,
		redis:      redisClient,
		userRepo:   &userRepo,

		userHandler: &handlers.UserHandler{Service: userService},
		profileHandler: &handlers.ProfileHandler{
			Service:   profileService,
			UploadDir: cfg.Media.UploadDir,
			Storage:   storage,
		},
		offerHandler: &handlers.OfferHandler{
			Service:         offerService,
			UploadDir:       cfg.Media.UploadDir,
			Storage:         storage,
			DefaultPageSize: cfg.Pagination.PageSize,
			MaxPageSize:     cfg.Pagination.MaxPageSize,
		},
		orderHandler:      &handlers.OrderHandler{Service: orderService},
		reviewHandler:     &handlers.ReviewHandler{Service: reviewService},
		statisticsHandler: &handlers.StatisticsHandler{Service: statisticsService},
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
