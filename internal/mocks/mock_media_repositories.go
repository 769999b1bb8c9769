package mocks

import (
	"context"

	"github.com/josptrra/be-rasadhana/domain"
)

// MockPhotoRepository implements domain.PhotoRepository for testing
type MockPhotoRepository struct {
	CreateFunc             func(ctx context.Context, photo *domain.UserPhoto) error
	FindByUserIDFunc       func(ctx context.Context, userID string) ([]domain.UserPhoto, error)
	FindLatestByUserIDFunc func(ctx context.Context, userID string) (*domain.UserPhoto, error)
}

func NewMockPhotoRepository() *MockPhotoRepository {
	return &MockPhotoRepository{}
}

func (m *MockPhotoRepository) Create(ctx context.Context, photo *domain.UserPhoto) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, photo)
	}
	return nil
}

func (m *MockPhotoRepository) FindByUserID(ctx context.Context, userID string) ([]domain.UserPhoto, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockPhotoRepository) FindLatestByUserID(ctx context.Context, userID string) (*domain.UserPhoto, error) {
	if m.FindLatestByUserIDFunc != nil {
		return m.FindLatestByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrPhotoNotFound
}

// MockRecipeRepository implements domain.RecipeRepository for testing
type MockRecipeRepository struct {
	CreateFunc   func(ctx context.Context, recipe *domain.Recipe) error
	FindAllFunc  func(ctx context.Context) ([]domain.Recipe, error)
	FindByIDFunc func(ctx context.Context, id string) (*domain.Recipe, error)
	UpdateFunc   func(ctx context.Context, recipe *domain.Recipe) error
	DeleteFunc   func(ctx context.Context, id string) error
}

func NewMockRecipeRepository() *MockRecipeRepository {
	return &MockRecipeRepository{}
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, recipe)
	}
	return nil
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]domain.Recipe, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrRecipeNotFound
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, recipe)
	}
	return nil
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockPredictionRepository implements domain.PredictionRepository for testing
type MockPredictionRepository struct {
	CreateFunc       func(ctx context.Context, prediction *domain.Prediction) error
	FindByUserIDFunc func(ctx context.Context, userID string) ([]domain.Prediction, error)

	// Created records every prediction handed to the default Create.
	Created []domain.Prediction
}

func NewMockPredictionRepository() *MockPredictionRepository {
	return &MockPredictionRepository{}
}

func (m *MockPredictionRepository) Create(ctx context.Context, prediction *domain.Prediction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, prediction)
	}
	m.Created = append(m.Created, *prediction)
	return nil
}

func (m *MockPredictionRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Prediction, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

// MockClassifier implements domain.Classifier for testing
type MockClassifier struct {
	PredictFunc func(ctx context.Context, image []byte) (string, error)
}

func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

func (m *MockClassifier) Predict(ctx context.Context, image []byte) (string, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, image)
	}
	return "tomat", nil
}

// Compile-time interface compliance verification
var (
	_ domain.PhotoRepository      = (*MockPhotoRepository)(nil)
	_ domain.RecipeRepository     = (*MockRecipeRepository)(nil)
	_ domain.PredictionRepository = (*MockPredictionRepository)(nil)
	_ domain.Classifier           = (*MockClassifier)(nil)
)
