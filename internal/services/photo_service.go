package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/josptrra/be-rasadhana/domain"
)

// PhotoServiceImpl implements domain.PhotoService. Every upload runs
// through the coordinator; after a successful upload the classifier is
// asked for an ingredient label and a Prediction record is stored.
// Prediction is best-effort: a classifier or prediction-store failure
// is logged but never fails the upload itself.
type PhotoServiceImpl struct {
	photoRepo      domain.PhotoRepository
	predictionRepo domain.PredictionRepository
	uploads        domain.UploadCoordinator
	classifier     domain.Classifier
	logger         *zap.Logger
}

// NewPhotoService creates a new photo service
func NewPhotoService(
	photoRepo domain.PhotoRepository,
	predictionRepo domain.PredictionRepository,
	uploads domain.UploadCoordinator,
	classifier domain.Classifier,
	logger *zap.Logger,
) domain.PhotoService {
	return &PhotoServiceImpl{
		photoRepo:      photoRepo,
		predictionRepo: predictionRepo,
		uploads:        uploads,
		classifier:     classifier,
		logger:         logger,
	}
}

// UploadPhoto implements domain.PhotoService
func (s *PhotoServiceImpl) UploadPhoto(ctx context.Context, userID string, upload domain.Upload) (*domain.UserPhoto, error) {
	photo := &domain.UserPhoto{
		UserID:     userID,
		UploadedAt: time.Now(),
	}

	url, err := s.uploads.Attach(ctx, upload, "ingredients", func(ctx context.Context, url string) error {
		photo.PhotoURL = url
		return s.photoRepo.Create(ctx, photo)
	})
	if err != nil {
		return nil, err
	}
	photo.PhotoURL = url

	s.recordPrediction(ctx, userID, url, upload.Data)

	return photo, nil
}

// ListPhotos implements domain.PhotoService
func (s *PhotoServiceImpl) ListPhotos(ctx context.Context, userID string) ([]domain.UserPhoto, error) {
	return s.photoRepo.FindByUserID(ctx, userID)
}

// LatestPhoto implements domain.PhotoService
func (s *PhotoServiceImpl) LatestPhoto(ctx context.Context, userID string) (*domain.UserPhoto, error) {
	return s.photoRepo.FindLatestByUserID(ctx, userID)
}

func (s *PhotoServiceImpl) recordPrediction(ctx context.Context, userID, photoURL string, image []byte) {
	if s.classifier == nil {
		return
	}

	label, err := s.classifier.Predict(ctx, image)
	if err != nil {
		s.logger.Warn("ingredient classification failed",
			zap.String("photo_url", photoURL),
			zap.Error(err))
		return
	}

	prediction := &domain.Prediction{
		UserID:     userID,
		PhotoURL:   photoURL,
		Ingredient: label,
		Recipes:    RecipesForIngredient(label),
		CreatedAt:  time.Now(),
	}

	if err := s.predictionRepo.Create(ctx, prediction); err != nil {
		s.logger.Warn("failed to store prediction",
			zap.String("photo_url", photoURL),
			zap.String("ingredient", label),
			zap.Error(err))
	}
}
