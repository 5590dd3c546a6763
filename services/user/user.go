package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	userRepo "nestfind/database/repository/user"
	"nestfind/models"
	"nestfind/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken signals a registration against an existing email.
var ErrEmailTaken = errors.New("email already registered")

// ErrUsernameTaken signals a registration against an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// ErrInvalidCredentials signals a failed sign-in. The reason (unknown
// account vs wrong password) is deliberately not distinguished.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// TokenTTL is the lifetime of issued access tokens.
const TokenTTL = 24 * time.Hour

// UserService handles account registration and token issuance.
type UserService interface {
	Register(ctx context.Context, in models.UserRegistration) (*models.User, error)
	Authenticate(ctx context.Context, creds models.UserCredentials) (string, *models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account with a bcrypt-hashed password.
func (s *DefaultUserService) Register(ctx context.Context, in models.UserRegistration) (*models.User, error) {
	if existing, err := s.Repo.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing, err := s.Repo.GetByUsername(ctx, in.Username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	} else if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Email:        in.Email,
		Username:     in.Username,
		FullName:     in.FullName,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Authenticate verifies credentials and issues a signed token. The token
// hash is stored on the account and cached for the auth middleware.
func (s *DefaultUserService) Authenticate(ctx context.Context, creds models.UserCredentials) (string, *models.User, error) {
	u, err := s.Repo.GetByUsername(ctx, creds.Identifier)
	if errors.Is(err, userRepo.ErrNotFound) {
		u, err = s.Repo.GetByEmail(ctx, creds.Identifier)
	}
	if errors.Is(err, userRepo.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !u.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(strconv.FormatInt(u.ID, 10), u.Email, TokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(ctx, u.ID, tokenHash); err != nil {
		return "", nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	// Prime the auth cache; a miss just falls back to the DB lookup.
	cacheKey := utils.AuthCachePrefix + strconv.FormatInt(u.ID, 10)
	_ = utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, utils.AuthCacheTTL).Err()

	return token, u, nil
}
