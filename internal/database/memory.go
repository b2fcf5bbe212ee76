package database

import (
	"context"
	"sort"
	"sync"

	"github.com/AnshRaj112/mealtracker-backend/internal/common"
	"github.com/AnshRaj112/mealtracker-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserRepository is an in-process user store used for local runs and
// tests. It mirrors the behavior of UserRepository.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			found := u.Snapshot()
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return common.ErrDuplicateKey
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, *user)
	return nil
}

// MemoryMealRepository is an in-process meal store. Meals are kept in
// insertion order.
type MemoryMealRepository struct {
	mu    sync.RWMutex
	meals []models.Meal
}

func NewMemoryMealRepository() *MemoryMealRepository {
	return &MemoryMealRepository{}
}

func (r *MemoryMealRepository) matching(ownerID *primitive.ObjectID) []models.Meal {
	out := make([]models.Meal, 0, len(r.meals))
	for i := len(r.meals) - 1; i >= 0; i-- {
		m := r.meals[i]
		if ownerID != nil && m.User.ID != *ownerID {
			continue
		}
		out = append(out, m)
	}
	// newest first; equal timestamps keep the latest insert first
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *MemoryMealRepository) Count(ctx context.Context, ownerID *primitive.ObjectID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.matching(ownerID))), nil
}

func (r *MemoryMealRepository) Find(ctx context.Context, ownerID *primitive.ObjectID, skip, limit int64) ([]models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.matching(ownerID)
	if skip < 0 {
		skip = 0
	}
	if skip >= int64(len(all)) {
		return []models.Meal{}, nil
	}
	end := int64(len(all))
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return all[skip:end], nil
}

func (r *MemoryMealRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(id); i != -1 {
		found := r.meals[i]
		return &found, nil
	}
	return nil, nil
}

func (r *MemoryMealRepository) Insert(ctx context.Context, meal *models.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if meal.ID.IsZero() {
		meal.ID = primitive.NewObjectID()
	}
	r.meals = append(r.meals, *meal)
	return nil
}

func (r *MemoryMealRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.MealUpdate) (*models.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i == -1 {
		return nil, nil
	}
	prior := r.meals[i]
	r.meals[i].Title = update.Title
	r.meals[i].Calories = update.Calories
	r.meals[i].UpdatedAt = update.UpdatedAt
	if update.Picture != nil {
		r.meals[i].Picture = *update.Picture
	}
	return &prior, nil
}

func (r *MemoryMealRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.index(id); i != -1 {
		r.meals = append(r.meals[:i], r.meals[i+1:]...)
	}
	return nil
}

func (r *MemoryMealRepository) index(id primitive.ObjectID) int {
	for i, m := range r.meals {
		if m.ID == id {
			return i
		}
	}
	return -1
}
