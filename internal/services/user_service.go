package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnshRaj112/mealtracker-backend/internal/common"
	"github.com/AnshRaj112/mealtracker-backend/internal/models"
	"github.com/AnshRaj112/mealtracker-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is the persistence the user service needs.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// FindByID returns the user without its password hash.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// UserService handles signup, login and bearer token resolution.
type UserService struct {
	users     UserRepository
	jwtSecret []byte
}

func NewUserService(users UserRepository, jwtSecret string) *UserService {
	return &UserService{users: users, jwtSecret: []byte(jwtSecret)}
}

// Signup validates the credentials, rejects taken usernames and stores the
// new user with a hashed password.
func (s *UserService) Signup(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Message: MsgAllFieldsRequired}
	}
	if !utils.IsAlphanumeric(username) {
		return nil, &ValidationError{Message: MsgUsernameAlphanum}
	}
	if !utils.IsPasswordLongEnough(password) {
		return nil, &ValidationError{Message: MsgPasswordTooShort}
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, &ConflictError{Message: MsgUsernameInUse}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: username, Password: hash}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateKey) {
			return nil, &ConflictError{Message: MsgUsernameInUse}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Login returns the stored user when the password matches. Unknown users and
// wrong passwords produce the same error.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Message: MsgAllFieldsRequired}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || !utils.VerifyPassword(password, user.Password) {
		return nil, &AuthError{Message: MsgInvalidCredentials}
	}
	return user, nil
}

// IssueToken signs a bearer token for user.
func (s *UserService) IssueToken(user *models.User) (string, error) {
	return utils.IssueToken(user.ID.Hex(), s.jwtSecret)
}

// Authenticate verifies a bearer token and resolves the user it names. A
// valid token for a user that no longer exists yields (nil, nil).
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := utils.VerifyToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	return s.users.FindByID(ctx, id)
}
