package user

import (
	"context"
	"errors"
)

type UserModel struct {
	ID         string `json:"id"`
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	LoginRetry int    `json:"-"`
	LastLogin  int64  `json:"-"`
}

// ErrDuplicatedUser unique key constraint violation
var ErrDuplicatedUser = errors.New("Username or email is already registered")

// ErrNoSuchUser sign-in rejection, deliberately vague about which part failed
var ErrNoSuchUser = errors.New("No such user or password is incorrect")

// ErrUserTooManyRetry login attempts exceeded the configured maximum
var ErrUserTooManyRetry = errors.New("Too many login attempts")

type UserRepository interface {
	FindByCredential(ctx context.Context, post *UserModel) (*UserModel, error)
	SaveUser(ctx context.Context, post *UserModel) error
	UpdateUser(ctx context.Context, post *UserModel) error
}

type UserUseCase interface {
	SignUp(ctx context.Context, post *UserModel) (*UserModel, error)
	Exists(ctx context.Context, post *UserModel) (bool, error)
}
