package mocks

import (
	"context"
	"time"

	"github.com/josptrra/be-rasadhana/domain"
)

// MockPhotoService implements domain.PhotoService for testing
type MockPhotoService struct {
	UploadPhotoFunc func(ctx context.Context, userID string, upload domain.Upload) (*domain.UserPhoto, error)
	ListPhotosFunc  func(ctx context.Context, userID string) ([]domain.UserPhoto, error)
	LatestPhotoFunc func(ctx context.Context, userID string) (*domain.UserPhoto, error)
}

func NewMockPhotoService() *MockPhotoService {
	return &MockPhotoService{}
}

func (m *MockPhotoService) UploadPhoto(ctx context.Context, userID string, upload domain.Upload) (*domain.UserPhoto, error) {
	if m.UploadPhotoFunc != nil {
		return m.UploadPhotoFunc(ctx, userID, upload)
	}
	return &domain.UserPhoto{
		ID:         "p1",
		UserID:     userID,
		PhotoURL:   "https://blobs.test/bucket/ingredients/photo.jpg",
		UploadedAt: time.Now(),
	}, nil
}

func (m *MockPhotoService) ListPhotos(ctx context.Context, userID string) ([]domain.UserPhoto, error) {
	if m.ListPhotosFunc != nil {
		return m.ListPhotosFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockPhotoService) LatestPhoto(ctx context.Context, userID string) (*domain.UserPhoto, error) {
	if m.LatestPhotoFunc != nil {
		return m.LatestPhotoFunc(ctx, userID)
	}
	return nil, domain.ErrPhotoNotFound
}

// MockRecipeService implements domain.RecipeService for testing
type MockRecipeService struct {
	CreateFunc func(ctx context.Context, title, ingredients, steps string, image domain.Upload) (*domain.Recipe, error)
	ListFunc   func(ctx context.Context) ([]domain.Recipe, error)
	UpdateFunc func(ctx context.Context, id, title, ingredients, steps string, image *domain.Upload) (*domain.Recipe, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func NewMockRecipeService() *MockRecipeService {
	return &MockRecipeService{}
}

func (m *MockRecipeService) Create(ctx context.Context, title, ingredients, steps string, image domain.Upload) (*domain.Recipe, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, title, ingredients, steps, image)
	}
	return &domain.Recipe{
		ID:          "r1",
		Title:       title,
		Ingredients: ingredients,
		Steps:       steps,
		ImageURL:    "https://blobs.test/bucket/recipes/image.jpg",
	}, nil
}

func (m *MockRecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockRecipeService) Update(ctx context.Context, id, title, ingredients, steps string, image *domain.Upload) (*domain.Recipe, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, title, ingredients, steps, image)
	}
	return &domain.Recipe{ID: id, Title: title, Ingredients: ingredients, Steps: steps}, nil
}

func (m *MockRecipeService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.PhotoService  = (*MockPhotoService)(nil)
	_ domain.RecipeService = (*MockRecipeService)(nil)
)
