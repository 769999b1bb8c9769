package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josptrra/be-rasadhana/domain"
)

// RecipeHandlers handles recipe catalog HTTP requests
type RecipeHandlers struct {
	recipeSvc domain.RecipeService
}

// NewRecipeHandlers creates new recipe handlers
func NewRecipeHandlers(recipeSvc domain.RecipeService) *RecipeHandlers {
	return &RecipeHandlers{recipeSvc: recipeSvc}
}

// Create handles POST /recipes
func (h *RecipeHandlers) Create(c *gin.Context) {
	title := c.PostForm("title")
	ingredients := c.PostForm("ingredients")
	steps := c.PostForm("steps")
	if title == "" || ingredients == "" || steps == "" {
		fail(c, http.StatusBadRequest, "Fields title, ingredients and steps are required")
		return
	}

	upload, err := readUpload(c, "recipeImage")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	recipe, err := h.recipeSvc.Create(c.Request.Context(), title, ingredients, steps, *upload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorage):
			fail(c, http.StatusInternalServerError, "Failed to upload recipe image")
		case errors.Is(err, domain.ErrPersist):
			fail(c, http.StatusInternalServerError, "Image stored but recipe could not be saved")
		default:
			fail(c, http.StatusInternalServerError, "Failed to create recipe")
		}
		return
	}

	ok(c, http.StatusCreated, "Recipe created", recipe)
}

// List handles GET /recipes
func (h *RecipeHandlers) List(c *gin.Context) {
	recipes, err := h.recipeSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to list recipes")
		return
	}
	if len(recipes) == 0 {
		fail(c, http.StatusNotFound, "No recipes found")
		return
	}

	ok(c, http.StatusOK, "", gin.H{"recipes": recipes})
}

// Update handles PATCH /recipes/:id. The image part is optional.
func (h *RecipeHandlers) Update(c *gin.Context) {
	var image *domain.Upload
	if fileHeader, err := c.FormFile("recipeImage"); err == nil {
		upload, err := uploadFromHeader(fileHeader)
		if err != nil {
			fail(c, http.StatusBadRequest, "Could not read uploaded file")
			return
		}
		image = upload
	}

	recipe, err := h.recipeSvc.Update(
		c.Request.Context(),
		c.Param("id"),
		c.PostForm("title"),
		c.PostForm("ingredients"),
		c.PostForm("steps"),
		image,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			fail(c, http.StatusNotFound, "Recipe not found")
		case errors.Is(err, domain.ErrStorage):
			fail(c, http.StatusInternalServerError, "Failed to upload recipe image")
		case errors.Is(err, domain.ErrPersist):
			fail(c, http.StatusInternalServerError, "Image stored but recipe could not be saved")
		default:
			fail(c, http.StatusInternalServerError, "Failed to update recipe")
		}
		return
	}

	ok(c, http.StatusOK, "Recipe updated", recipe)
}

// Delete handles DELETE /recipes/:id
func (h *RecipeHandlers) Delete(c *gin.Context) {
	err := h.recipeSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			fail(c, http.StatusNotFound, "Recipe not found")
		case errors.Is(err, domain.ErrStorage):
			fail(c, http.StatusInternalServerError, "Failed to delete recipe image from storage")
		default:
			fail(c, http.StatusInternalServerError, "Failed to delete recipe")
		}
		return
	}

	ok(c, http.StatusOK, "Recipe deleted", nil)
}
