package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/AnshRaj112/mealtracker-backend/internal/models"
	"github.com/AnshRaj112/mealtracker-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MealsPerPage is the page size of the global meal feed.
	MealsPerPage = 8
	// UserMealsPerPage is the page size of a single user's meals.
	UserMealsPerPage = 6
)

// MealRepository is the persistence the meal service needs. A nil ownerID
// means all meals.
type MealRepository interface {
	Count(ctx context.Context, ownerID *primitive.ObjectID) (int64, error)
	Find(ctx context.Context, ownerID *primitive.ObjectID, skip, limit int64) ([]models.Meal, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error)
	Insert(ctx context.Context, meal *models.Meal) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, update models.MealUpdate) (*models.Meal, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// MealInput is the client-supplied part of a meal. Calories is kept as the raw
// number text so that a missing value can be told apart from a zero one;
// Picture is nil when the client did not send it.
type MealInput struct {
	Title    string
	Calories string
	Picture  *string
}

// MealPage is one page of a meal listing.
type MealPage struct {
	Meals        []models.Meal `json:"meals"`
	TotalMeals   int64         `json:"total_meals"`
	TotalPages   int64         `json:"total_pages"`
	LimitPerPage int64         `json:"limit_per_page"`
}

type MealService struct {
	meals MealRepository
}

func NewMealService(meals MealRepository) *MealService {
	return &MealService{meals: meals}
}

// PageIndex converts a one-based page query value into a zero-based index.
// Missing, non-numeric and non-positive values select the first page.
func PageIndex(raw string) int64 {
	page, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || page < 1 {
		return 0
	}
	return page - 1
}

// pageSkip returns the number of meals before page. Pages too large to
// address saturate at math.MaxInt64, which lies past the end of any listing.
func pageSkip(page, perPage int64) int64 {
	if page <= 0 {
		return 0
	}
	if page > math.MaxInt64/perPage {
		return math.MaxInt64
	}
	return page * perPage
}

// List returns a page of all meals, newest first.
func (s *MealService) List(ctx context.Context, page int64) (*MealPage, error) {
	return s.list(ctx, nil, page, MealsPerPage)
}

// ListByUser returns a page of the meals owned by userID, newest first.
func (s *MealService) ListByUser(ctx context.Context, userID primitive.ObjectID, page int64) (*MealPage, error) {
	return s.list(ctx, &userID, page, UserMealsPerPage)
}

func (s *MealService) list(ctx context.Context, ownerID *primitive.ObjectID, page, perPage int64) (*MealPage, error) {
	total, err := s.meals.Count(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count meals: %w", err)
	}
	meals, err := s.meals.Find(ctx, ownerID, pageSkip(page, perPage), perPage)
	if err != nil {
		return nil, fmt.Errorf("find meals: %w", err)
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	return &MealPage{
		Meals:        meals,
		TotalMeals:   total,
		TotalPages:   (total + perPage - 1) / perPage,
		LimitPerPage: perPage,
	}, nil
}

// Get returns the meal with the given id.
func (s *MealService) Get(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	meal, err := s.meals.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find meal: %w", err)
	}
	if meal == nil {
		return nil, &NotFoundError{Message: MsgNoDataFound}
	}
	return meal, nil
}

// Create validates input and stores a new meal owned by a snapshot of owner.
func (s *MealService) Create(ctx context.Context, input MealInput, owner *models.User) (*models.Meal, error) {
	calories, err := validateMeal(input)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, &ValidationError{Message: MsgOwnerRequired}
	}

	now := time.Now().UTC()
	meal := &models.Meal{
		Title:     input.Title,
		Calories:  calories,
		User:      owner.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Picture != nil {
		meal.Picture = *input.Picture
	}
	if err := s.meals.Insert(ctx, meal); err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}
	return meal, nil
}

// Update validates input, replaces the supplied fields and returns the meal
// as it was before the update.
func (s *MealService) Update(ctx context.Context, id primitive.ObjectID, input MealInput) (*models.Meal, error) {
	calories, err := validateMeal(input)
	if err != nil {
		return nil, err
	}

	prior, err := s.meals.UpdateByID(ctx, id, models.MealUpdate{
		Title:     input.Title,
		Calories:  calories,
		Picture:   input.Picture,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("update meal: %w", err)
	}
	if prior == nil {
		return nil, &NotFoundError{Message: MsgNoDataFound}
	}
	return prior, nil
}

// Delete removes the meal when requester owns it. Either way the meal as it
// was before the call is returned, and the caller cannot tell which happened.
func (s *MealService) Delete(ctx context.Context, id primitive.ObjectID, requester *models.User) (*models.Meal, error) {
	meal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if requester == nil || requester.ID != meal.User.ID {
		return meal, nil
	}
	if err := s.meals.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("delete meal: %w", err)
	}
	return meal, nil
}

// ValidateMeal reports the same field errors Create and Update would return
// for input, without touching the store.
func ValidateMeal(input MealInput) error {
	_, err := validateMeal(input)
	return err
}

// validateMeal checks every field and returns the parsed calories. All
// failing fields are reported together.
func validateMeal(input MealInput) (float64, error) {
	var invalid []string
	if input.Title == "" {
		invalid = append(invalid, FieldTitle)
	}
	calories, err := strconv.ParseFloat(input.Calories, 64)
	if err != nil || calories == 0 || math.IsNaN(calories) || math.IsInf(calories, 0) {
		invalid = append(invalid, FieldCalories)
	}
	if input.Picture != nil && *input.Picture != "" && !utils.ValidateURL(*input.Picture) {
		invalid = append(invalid, FieldPicture)
	}
	if len(invalid) > 0 {
		return 0, newFieldsError(invalid)
	}
	return calories, nil
}
