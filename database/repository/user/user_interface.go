package userRepo

import (
	"context"
	"errors"

	"nestfind/models"
)

// ErrNotFound signals that no account exists for the requested key.
var ErrNotFound = errors.New("user not found")

// UserRepository is the account store behind registration, sign-in and
// the auth middleware.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateTokenHash(ctx context.Context, id int64, tokenHash string) error
}
