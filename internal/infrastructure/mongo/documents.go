package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceDocument is the MongoDB schema for a food place record.
type PlaceDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Cuisine   string             `bson:"cuisine"`
	Location  string             `bson:"location"`
	Rating    float64            `bson:"rating"`
	Images    []string           `bson:"images,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// UserDocument is the MongoDB schema for an account. IDs are UUID strings
// assigned by the identity service, not ObjectIDs.
type UserDocument struct {
	ID           string    `bson:"_id"`
	FirstName    string    `bson:"firstName"`
	LastName     string    `bson:"lastName"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"createdAt"`
}
