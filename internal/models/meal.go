package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal is a meal record. User is a copy of the owner taken when the meal was
// created, not a reference.
type Meal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Calories  float64            `bson:"calories" json:"calories"`
	Picture   string             `bson:"picture,omitempty" json:"picture,omitempty"`
	User      User               `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MealUpdate is the set of fields replaced by an update. A nil Picture leaves
// the stored picture untouched.
type MealUpdate struct {
	Title     string
	Calories  float64
	Picture   *string
	UpdatedAt time.Time
}
