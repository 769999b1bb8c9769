package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/josptrra/be-rasadhana/domain"
	"github.com/josptrra/be-rasadhana/internal/mocks"
)

func newPhotoServiceForTest(
	photoRepo *mocks.MockPhotoRepository,
	predictionRepo *mocks.MockPredictionRepository,
	classifier domain.Classifier,
) domain.PhotoService {
	return NewPhotoService(
		photoRepo,
		predictionRepo,
		NewUploadCoordinator(mocks.NewMockBlobStore(), zap.NewNop()),
		classifier,
		zap.NewNop(),
	)
}

func TestPhotoServiceImpl_UploadPhoto(t *testing.T) {
	t.Run("stores the photo and a prediction", func(t *testing.T) {
		photoRepo := mocks.NewMockPhotoRepository()
		predictionRepo := mocks.NewMockPredictionRepository()

		var created *domain.UserPhoto
		photoRepo.CreateFunc = func(ctx context.Context, photo *domain.UserPhoto) error {
			created = photo
			return nil
		}

		svc := newPhotoServiceForTest(photoRepo, predictionRepo, mocks.NewMockClassifier())
		photo, err := svc.UploadPhoto(context.Background(), "u1", testUpload())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if created == nil || created.PhotoURL == "" {
			t.Fatal("expected a stored photo record with a url")
		}
		if photo.PhotoURL != created.PhotoURL {
			t.Errorf("returned url %q differs from stored %q", photo.PhotoURL, created.PhotoURL)
		}

		if len(predictionRepo.Created) != 1 {
			t.Fatalf("expected one prediction, got %d", len(predictionRepo.Created))
		}
		prediction := predictionRepo.Created[0]
		if prediction.Ingredient != "tomat" {
			t.Errorf("expected ingredient tomat, got %s", prediction.Ingredient)
		}
		if len(prediction.Recipes) == 0 {
			t.Error("expected suggested recipes for a known ingredient")
		}
		if prediction.PhotoURL != photo.PhotoURL {
			t.Errorf("prediction points at %q, photo at %q", prediction.PhotoURL, photo.PhotoURL)
		}
	})

	t.Run("classifier failure never fails the upload", func(t *testing.T) {
		photoRepo := mocks.NewMockPhotoRepository()
		predictionRepo := mocks.NewMockPredictionRepository()
		classifier := mocks.NewMockClassifier()
		classifier.PredictFunc = func(ctx context.Context, image []byte) (string, error) {
			return "", errors.New("model unavailable")
		}

		svc := newPhotoServiceForTest(photoRepo, predictionRepo, classifier)
		if _, err := svc.UploadPhoto(context.Background(), "u1", testUpload()); err != nil {
			t.Fatalf("upload must survive a classifier failure, got %v", err)
		}
		if len(predictionRepo.Created) != 0 {
			t.Errorf("no prediction expected, got %d", len(predictionRepo.Created))
		}
	})

	t.Run("prediction store failure never fails the upload", func(t *testing.T) {
		predictionRepo := mocks.NewMockPredictionRepository()
		predictionRepo.CreateFunc = func(ctx context.Context, prediction *domain.Prediction) error {
			return errors.New("db down")
		}

		svc := newPhotoServiceForTest(mocks.NewMockPhotoRepository(), predictionRepo, mocks.NewMockClassifier())
		if _, err := svc.UploadPhoto(context.Background(), "u1", testUpload()); err != nil {
			t.Fatalf("upload must survive a prediction store failure, got %v", err)
		}
	})

	t.Run("works without a classifier", func(t *testing.T) {
		predictionRepo := mocks.NewMockPredictionRepository()
		svc := newPhotoServiceForTest(mocks.NewMockPhotoRepository(), predictionRepo, nil)

		if _, err := svc.UploadPhoto(context.Background(), "u1", testUpload()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(predictionRepo.Created) != 0 {
			t.Errorf("no prediction expected without a classifier, got %d", len(predictionRepo.Created))
		}
	})

	t.Run("failed photo record keeps predictions out", func(t *testing.T) {
		photoRepo := mocks.NewMockPhotoRepository()
		photoRepo.CreateFunc = func(ctx context.Context, photo *domain.UserPhoto) error {
			return errors.New("db down")
		}
		predictionRepo := mocks.NewMockPredictionRepository()

		svc := newPhotoServiceForTest(photoRepo, predictionRepo, mocks.NewMockClassifier())
		if _, err := svc.UploadPhoto(context.Background(), "u1", testUpload()); !errors.Is(err, domain.ErrPersist) {
			t.Fatalf("expected ErrPersist, got %v", err)
		}
		if len(predictionRepo.Created) != 0 {
			t.Errorf("no prediction may exist for a photo that was never recorded, got %d", len(predictionRepo.Created))
		}
	})
}

func TestRecipesForIngredient(t *testing.T) {
	if got := RecipesForIngredient("tomat"); len(got) == 0 {
		t.Error("expected recipes for tomat")
	}
	if got := RecipesForIngredient("durian"); len(got) != 0 {
		t.Errorf("expected no recipes for an unknown ingredient, got %v", got)
	}
}
