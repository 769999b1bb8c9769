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

// UserRepositoryImpl implements domain.UserRepository over the UserInfo
// collection.
type UserRepositoryImpl struct {
	coll *mongo.Collection
}

// DBUser is the persistence model for User (with bson tags)
type DBUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password,omitempty"`
	PhotoURL     string             `bson:"photoUrl,omitempty"`
	ResetToken   string             `bson:"resetToken,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &UserRepositoryImpl{coll: db.Collection("UserInfo")}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	dbUser := &DBUser{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		PhotoURL:     user.PhotoURL,
		ResetToken:   user.ResetToken,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := r.coll.InsertOne(ctx, dbUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var dbUser DBUser
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateName implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateName(ctx context.Context, id, name string) (*domain.User, error) {
	return r.findAndUpdate(ctx, id, bson.M{"name": name})
}

// UpdatePhotoURL implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePhotoURL(ctx context.Context, id, photoURL string) (*domain.User, error) {
	return r.findAndUpdate(ctx, id, bson.M{"photoUrl": photoURL})
}

// SetResetToken implements domain.UserRepository. A new token overwrites
// any previous one, so at most one reset token is active per account.
func (r *UserRepositoryImpl) SetResetToken(ctx context.Context, id, token string) error {
	_, err := r.findAndUpdate(ctx, id, bson.M{"resetToken": token})
	return err
}

// ConsumeResetToken implements domain.UserRepository. The match and the
// clear happen in a single FindOneAndUpdate so two concurrent resets
// with the same token cannot both succeed.
func (r *UserRepositoryImpl) ConsumeResetToken(ctx context.Context, token, newPasswordHash string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrResetTokenInvalid
	}

	update := bson.M{
		"$set":   bson.M{"password": newPasswordHash, "updatedAt": time.Now()},
		"$unset": bson.M{"resetToken": ""},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var dbUser DBUser
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"resetToken": token}, update, opts).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

func (r *UserRepositoryImpl) findAndUpdate(ctx context.Context, id string, set bson.M) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var dbUser DBUser
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID.Hex(),
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		PhotoURL:     dbUser.PhotoURL,
		ResetToken:   dbUser.ResetToken,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
