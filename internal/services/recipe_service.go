package services

import (
	"context"
	"fmt"

	"github.com/josptrra/be-rasadhana/domain"
)

// recipesByIngredient maps a detected ingredient label to suggested
// recipes for it.
var recipesByIngredient = map[string][]string{
	"kentang": {"Kentang Goreng", "Perkedel Kentang"},
	"tomat":   {"Sup Tomat", "Salad Tomat"},
	"tempe":   {"Tempe Goreng", "Oseng Tempe"},
	"wortel":  {"Wortel Rebus", "Sup Wortel"},
}

// RecipesForIngredient returns the suggested recipes for an ingredient
// label, or an empty slice for an unknown label.
func RecipesForIngredient(label string) []string {
	return recipesByIngredient[label]
}

// RecipeServiceImpl implements domain.RecipeService. Image handling
// goes through the upload coordinator so a recipe never references an
// image that failed to upload.
type RecipeServiceImpl struct {
	recipeRepo domain.RecipeRepository
	uploads    domain.UploadCoordinator
}

// NewRecipeService creates a new recipe service
func NewRecipeService(recipeRepo domain.RecipeRepository, uploads domain.UploadCoordinator) domain.RecipeService {
	return &RecipeServiceImpl{recipeRepo: recipeRepo, uploads: uploads}
}

// Create implements domain.RecipeService
func (s *RecipeServiceImpl) Create(ctx context.Context, title, ingredients, steps string, image domain.Upload) (*domain.Recipe, error) {
	recipe := &domain.Recipe{
		Title:       title,
		Ingredients: ingredients,
		Steps:       steps,
	}

	url, err := s.uploads.Attach(ctx, image, "recipes", func(ctx context.Context, url string) error {
		recipe.ImageURL = url
		return s.recipeRepo.Create(ctx, recipe)
	})
	if err != nil {
		return nil, err
	}
	recipe.ImageURL = url

	return recipe, nil
}

// List implements domain.RecipeService
func (s *RecipeServiceImpl) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipeRepo.FindAll(ctx)
}

// Update implements domain.RecipeService. A nil image updates only the
// text fields; a new image runs the coordinator path and the stored
// URL is replaced only after the new object write is confirmed.
func (s *RecipeServiceImpl) Update(ctx context.Context, id, title, ingredients, steps string, image *domain.Upload) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		recipe.Title = title
	}
	if ingredients != "" {
		recipe.Ingredients = ingredients
	}
	if steps != "" {
		recipe.Steps = steps
	}

	if image == nil {
		if err := s.recipeRepo.Update(ctx, recipe); err != nil {
			return nil, err
		}
		return recipe, nil
	}

	url, err := s.uploads.Attach(ctx, *image, "recipes", func(ctx context.Context, url string) error {
		recipe.ImageURL = url
		return s.recipeRepo.Update(ctx, recipe)
	})
	if err != nil {
		return nil, err
	}
	recipe.ImageURL = url

	return recipe, nil
}

// Delete implements domain.RecipeService. The blob is removed first;
// a storage failure surfaces to the caller and the record stays.
func (s *RecipeServiceImpl) Delete(ctx context.Context, id string) error {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if recipe.ImageURL == "" {
		return s.recipeRepo.Delete(ctx, id)
	}

	err = s.uploads.Remove(ctx, recipe.ImageURL, func(ctx context.Context) error {
		return s.recipeRepo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete recipe %s: %w", id, err)
	}
	return nil
}
