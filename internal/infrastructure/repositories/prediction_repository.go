package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/josptrra/be-rasadhana/domain"
)

// PredictionRepositoryImpl implements domain.PredictionRepository over
// the Predictions collection.
type PredictionRepositoryImpl struct {
	coll *mongo.Collection
}

// DBPrediction is the persistence model for Prediction
type DBPrediction struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"userId"`
	PhotoURL   string             `bson:"photoUrl"`
	Ingredient string             `bson:"detectedIngredient"`
	Recipes    []string           `bson:"recipes"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

// NewPredictionRepository creates a new prediction repository
func NewPredictionRepository(db *mongo.Database) domain.PredictionRepository {
	return &PredictionRepositoryImpl{coll: db.Collection("Predictions")}
}

// Create implements domain.PredictionRepository
func (r *PredictionRepositoryImpl) Create(ctx context.Context, prediction *domain.Prediction) error {
	if prediction.CreatedAt.IsZero() {
		prediction.CreatedAt = time.Now()
	}

	res, err := r.coll.InsertOne(ctx, &DBPrediction{
		UserID:     prediction.UserID,
		PhotoURL:   prediction.PhotoURL,
		Ingredient: prediction.Ingredient,
		Recipes:    prediction.Recipes,
		CreatedAt:  prediction.CreatedAt,
	})
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		prediction.ID = oid.Hex()
	}
	return nil
}

// FindByUserID implements domain.PredictionRepository, newest first.
func (r *PredictionRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]domain.Prediction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var predictions []domain.Prediction
	for cursor.Next(ctx) {
		var dbPred DBPrediction
		if err := cursor.Decode(&dbPred); err != nil {
			return nil, err
		}
		predictions = append(predictions, domain.Prediction{
			ID:         dbPred.ID.Hex(),
			UserID:     dbPred.UserID,
			PhotoURL:   dbPred.PhotoURL,
			Ingredient: dbPred.Ingredient,
			Recipes:    dbPred.Recipes,
			CreatedAt:  dbPred.CreatedAt,
		})
	}
	return predictions, cursor.Err()
}
