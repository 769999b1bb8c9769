package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/josptrra/be-rasadhana/domain"
)

// PhotoRepositoryImpl implements domain.PhotoRepository over the
// UserPhotos collection.
type PhotoRepositoryImpl struct {
	coll *mongo.Collection
}

// DBUserPhoto is the persistence model for UserPhoto
type DBUserPhoto struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"userId"`
	PhotoURL   string             `bson:"photoUrl"`
	UploadedAt time.Time          `bson:"uploadedAt"`
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *mongo.Database) domain.PhotoRepository {
	return &PhotoRepositoryImpl{coll: db.Collection("UserPhotos")}
}

// Create implements domain.PhotoRepository
func (r *PhotoRepositoryImpl) Create(ctx context.Context, photo *domain.UserPhoto) error {
	if photo.UploadedAt.IsZero() {
		photo.UploadedAt = time.Now()
	}

	res, err := r.coll.InsertOne(ctx, &DBUserPhoto{
		UserID:     photo.UserID,
		PhotoURL:   photo.PhotoURL,
		UploadedAt: photo.UploadedAt,
	})
	if err != nil {
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		photo.ID = oid.Hex()
	}
	return nil
}

// FindByUserID implements domain.PhotoRepository
func (r *PhotoRepositoryImpl) FindByUserID(ctx context.Context, userID string) ([]domain.UserPhoto, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var photos []domain.UserPhoto
	for cursor.Next(ctx) {
		var dbPhoto DBUserPhoto
		if err := cursor.Decode(&dbPhoto); err != nil {
			return nil, err
		}
		photos = append(photos, *dbToDomainPhoto(&dbPhoto))
	}
	return photos, cursor.Err()
}

// FindLatestByUserID implements domain.PhotoRepository. Newest by
// uploadedAt wins.
func (r *PhotoRepositoryImpl) FindLatestByUserID(ctx context.Context, userID string) (*domain.UserPhoto, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	var dbPhoto DBUserPhoto
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&dbPhoto)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}
	return dbToDomainPhoto(&dbPhoto), nil
}

func dbToDomainPhoto(dbPhoto *DBUserPhoto) *domain.UserPhoto {
	return &domain.UserPhoto{
		ID:         dbPhoto.ID.Hex(),
		UserID:     dbPhoto.UserID,
		PhotoURL:   dbPhoto.PhotoURL,
		UploadedAt: dbPhoto.UploadedAt,
	}
}
