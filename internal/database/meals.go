package database

import (
	"context"
	"errors"

	"github.com/AnshRaj112/mealtracker-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MealRepository stores meals in the "meals" collection.
type MealRepository struct {
	coll *mongo.Collection
}

func NewMealRepository(db *mongo.Database) *MealRepository {
	return &MealRepository{coll: db.Collection(MealsCollection)}
}

func mealFilter(ownerID *primitive.ObjectID) bson.M {
	if ownerID == nil {
		return bson.M{}
	}
	return bson.M{"user._id": *ownerID}
}

// Count returns the number of meals, optionally restricted to one owner.
func (r *MealRepository) Count(ctx context.Context, ownerID *primitive.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, mealFilter(ownerID))
}

// Find returns one page of meals, newest first.
func (r *MealRepository) Find(ctx context.Context, ownerID *primitive.ObjectID, skip, limit int64) ([]models.Meal, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	findOptions.SetSkip(skip)
	findOptions.SetLimit(limit)

	cursor, err := r.coll.Find(ctx, mealFilter(ownerID), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meals := []models.Meal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// FindByID returns the meal or nil when absent.
func (r *MealRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	var meal models.Meal
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *MealRepository) Insert(ctx context.Context, meal *models.Meal) error {
	if meal.ID.IsZero() {
		meal.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, meal)
	return err
}

// UpdateByID applies update and returns the document as it was before the
// update, or nil when no meal has that id.
func (r *MealRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.MealUpdate) (*models.Meal, error) {
	set := bson.M{
		"title":     update.Title,
		"calories":  update.Calories,
		"updatedAt": update.UpdatedAt,
	}
	if update.Picture != nil {
		set["picture"] = *update.Picture
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	var prior models.Meal
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&prior)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prior, nil
}

func (r *MealRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
