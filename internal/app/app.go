package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/josptrra/be-rasadhana/internal/config"
	httpx "github.com/josptrra/be-rasadhana/internal/http"
	"github.com/josptrra/be-rasadhana/internal/http/handlers"
	"github.com/josptrra/be-rasadhana/internal/infrastructure/auth"
	"github.com/josptrra/be-rasadhana/internal/infrastructure/database"
	"github.com/josptrra/be-rasadhana/internal/infrastructure/notifications"
	"github.com/josptrra/be-rasadhana/internal/infrastructure/repositories"
	"github.com/josptrra/be-rasadhana/internal/infrastructure/storage"
	"github.com/josptrra/be-rasadhana/internal/services"
)

func Run(cfg *config.Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	db, err := database.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(ctx); err != nil {
		return err
	}

	photoStore, err := storage.NewS3Store(ctx, storage.Options{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.PhotoBucket,
		BaseURL:   cfg.PublicBaseURL,
	})
	if err != nil {
		return err
	}
	recipeStore, err := storage.NewS3Store(ctx, storage.Options{
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.RecipeBucket,
		BaseURL:   cfg.PublicBaseURL,
	})
	if err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	notificationSvc := notifications.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	photoRepo := repositories.NewPhotoRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)
	predictionRepo := repositories.NewPredictionRepository(db)
	pendingStore := repositories.NewPendingStore(rdb.Client, cfg.OTPTTL)

	// Services
	otpGen := services.NewOTPGenerator(cfg.OTPTTL)
	profileUploads := services.NewUploadCoordinator(photoStore, logger)
	recipeUploads := services.NewUploadCoordinator(recipeStore, logger)

	authSvc := services.NewAuthService(
		userRepo,
		pendingStore,
		passwordSvc,
		tokenSvc,
		otpGen,
		notificationSvc,
		profileUploads,
		photoStore.URL("default-profile.jpg"),
		logger,
	)
	// The classifier runs as a separate model-serving deployment; this
	// service records its output when one is configured.
	photoSvc := services.NewPhotoService(photoRepo, predictionRepo, profileUploads, nil, logger)
	recipeSvc := services.NewRecipeService(recipeRepo, recipeUploads)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc)
	photoH := handlers.NewPhotoHandlers(photoSvc)
	recipeH := handlers.NewRecipeHandlers(recipeSvc)

	r := httpx.BuildRouter(authH, photoH, recipeH, tokenSvc)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
