package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	identityapp "github.com/aliraza-dev/foodatlas-services/api/internal/identity/application"
	identitydomain "github.com/aliraza-dev/foodatlas-services/api/internal/identity/domain"
)

// UserRepository implements identityapp.UserRepository using MongoDB.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new Mongo-backed account repository.
func NewUserRepository(db *mongo.Database, collectionName string) *UserRepository {
	return &UserRepository{collection: db.Collection(collectionName)}
}

// Create inserts a new account, mapping the duplicate-email case onto the
// application sentinel so callers can answer with a conflict.
func (r *UserRepository) Create(ctx context.Context, user *identitydomain.User) error {
	err := r.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return identityapp.ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	doc := UserDocument{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		CreatedAt:    user.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return identityapp.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByEmail returns the account registered under email, or ErrUnknownEmail.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*identitydomain.User, error) {
	var doc UserDocument
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, identityapp.ErrUnknownEmail
		}
		return nil, err
	}

	role, err := identitydomain.NewRole(doc.Role)
	if err != nil {
		role = identitydomain.Role(doc.Role)
	}

	return &identitydomain.User{
		ID:           doc.ID,
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         role,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
