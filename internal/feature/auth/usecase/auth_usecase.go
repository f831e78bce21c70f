// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"fmt"

	"academy_backend/internal/apperr"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/platform/hash"
)

// Dummy bcrypt hash compared when the user does not exist, so login takes
// the same time either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts user persistence for the auth feature.
// Following Go convention, the interface is defined by the consumer.
type UserRepository interface {
	// Create persists a new user. A duplicate email yields a typed
	// BadRequest error.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user with the role association loaded.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenSigner issues signed bearer tokens.
type TokenSigner interface {
	Sign(userID uint, role string) (string, error)
}

// RegisteredUser is the outward view of a freshly registered account.
type RegisteredUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthUsecase implements registration and login.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenSigner
}

// NewAuthUsecase wires the auth usecase with its dependencies.
func NewAuthUsecase(users UserRepository, tokens TokenSigner) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Register creates a new account with the Student role.
func (u *AuthUsecase) Register(ctx context.Context, email, password string) (*RegisteredUser, error) {
	hashed, err := hash.Password(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hashed,
		RoleID:       entity.RoleStudent,
		Active:       true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return &RegisteredUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  entity.RoleName(user.RoleID),
	}, nil
}

// Login authenticates a user and returns a signed bearer token carrying the
// user ID and role name. A bcrypt comparison runs even when the user does
// not exist, to keep response times uniform; all failures collapse into one
// generic Unauthorized error.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	ok, cmpErr := hash.Compare(password, passwordHash)
	if err != nil || cmpErr != nil || !ok {
		return "", apperr.Unauthorized("Invalid email or password")
	}

	role := entity.RoleName(user.RoleID)
	if user.Role != nil {
		role = user.Role.Name
	}

	signed, err := u.tokens.Sign(user.ID, role)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}
