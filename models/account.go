package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FarmerAccount — login credentials for the farmer-facing client.
// Separate from FarmerProfile: an account may submit many profiles.
type FarmerAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username"      json:"username"`
	Email        string             `bson:"email"         json:"email"`
	PasswordHash string             `bson:"passwordHash"  json:"-"`
	CreatedAt    time.Time          `bson:"createdAt"     json:"createdAt"`
}
