package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/josptrra/be-rasadhana/domain"
)

// RecipeRepositoryImpl implements domain.RecipeRepository over the
// Recipes collection.
type RecipeRepositoryImpl struct {
	coll *mongo.Collection
}

// DBRecipe is the persistence model for Recipe
type DBRecipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Ingredients string             `bson:"ingredients"`
	Steps       string             `bson:"steps"`
	ImageURL    string             `bson:"recipeImage"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *mongo.Database) domain.RecipeRepository {
	return &RecipeRepositoryImpl{coll: db.Collection("Recipes")}
}

// Create implements domain.RecipeRepository
func (r *RecipeRepositoryImpl) Create(ctx context.Context, recipe *domain.Recipe) error {
	now := time.Now()
	res, err := r.coll.InsertOne(ctx, &DBRecipe{
		Title:       recipe.Title,
		Ingredients: recipe.Ingredients,
		Steps:       recipe.Steps,
		ImageURL:    recipe.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		recipe.ID = oid.Hex()
	}
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	return nil
}

// FindAll implements domain.RecipeRepository
func (r *RecipeRepositoryImpl) FindAll(ctx context.Context) ([]domain.Recipe, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recipes []domain.Recipe
	for cursor.Next(ctx) {
		var dbRecipe DBRecipe
		if err := cursor.Decode(&dbRecipe); err != nil {
			return nil, err
		}
		recipes = append(recipes, *dbToDomainRecipe(&dbRecipe))
	}
	return recipes, cursor.Err()
}

// FindByID implements domain.RecipeRepository
func (r *RecipeRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	var dbRecipe DBRecipe
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&dbRecipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return dbToDomainRecipe(&dbRecipe), nil
}

// Update implements domain.RecipeRepository
func (r *RecipeRepositoryImpl) Update(ctx context.Context, recipe *domain.Recipe) error {
	oid, err := primitive.ObjectIDFromHex(recipe.ID)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	recipe.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":       recipe.Title,
		"ingredients": recipe.Ingredients,
		"steps":       recipe.Steps,
		"recipeImage": recipe.ImageURL,
		"updatedAt":   recipe.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// Delete implements domain.RecipeRepository
func (r *RecipeRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func dbToDomainRecipe(dbRecipe *DBRecipe) *domain.Recipe {
	return &domain.Recipe{
		ID:          dbRecipe.ID.Hex(),
		Title:       dbRecipe.Title,
		Ingredients: dbRecipe.Ingredients,
		Steps:       dbRecipe.Steps,
		ImageURL:    dbRecipe.ImageURL,
		CreatedAt:   dbRecipe.CreatedAt,
		UpdatedAt:   dbRecipe.UpdatedAt,
	}
}
