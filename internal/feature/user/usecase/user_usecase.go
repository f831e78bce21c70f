// Package usecase implements the business logic for user administration.
package usecase

import (
	"context"

	"academy_backend/internal/api"
	"academy_backend/internal/domain/entity"
	"academy_backend/internal/platform/hash"
)

// UserFilter narrows the user listing. Zero values mean "no filter".
type UserFilter struct {
	Email     string
	FirstName string
	LastName  string
	RoleID    uint
}

// UserRepository abstracts user persistence. Defined by the consumer per Go
// convention.
type UserRepository interface {
	List(ctx context.Context, filter UserFilter, page, limit int) ([]entity.User, int64, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uint) error
}

// UserPage is one page of the user listing.
type UserPage struct {
	Users       []entity.User `json:"users"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	TotalUsers  int64         `json:"totalUsers"`
}

// CreateUserInput carries the fields for a new user. RoleID zero means the
// default student role.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
	RoleID    uint
	Active    *bool
}

// UpdateUserInput carries the optional fields of a user update. A non-nil
// Password is re-hashed before storage.
type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	RoleID    *uint
	Active    *bool
}

// UserUsecase implements user administration.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase wires the usecase with its repository.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// List returns one page of users matching the filter.
func (u *UserUsecase) List(ctx context.Context, filter UserFilter, page, limit int) (*UserPage, error) {
	users, total, err := u.users.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}
	return &UserPage{
		Users:       users,
		TotalPages:  api.TotalPages(total, limit),
		CurrentPage: page,
		TotalUsers:  total,
	}, nil
}

// Get returns a single user by ID.
func (u *UserUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Create adds a new user with a hashed password.
func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	hashed, err := hash.Password(in.Password)
	if err != nil {
		return nil, err
	}

	roleID := in.RoleID
	if roleID == 0 {
		roleID = entity.RoleStudent
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	user := &entity.User{
		Email:        in.Email,
		PasswordHash: hashed,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		RoleID:       roleID,
		Active:       active,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies the provided fields to an existing user, re-hashing the
// password when one is supplied.
func (u *UserUsecase) Update(ctx context.Context, id uint, in UpdateUserInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := hash.Password(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if in.FirstName != nil {
		user.FirstName = in.FirstName
	}
	if in.LastName != nil {
		user.LastName = in.LastName
	}
	if in.RoleID != nil {
		user.RoleID = *in.RoleID
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user.
func (u *UserUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
