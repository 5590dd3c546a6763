package user

import (
	"context"
	"testing"

	userRepo "nestfind/database/repository/user"
	"nestfind/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateTokenHash(ctx context.Context, id int64, tokenHash string) error {
	args := m.Called(ctx, id, tokenHash)
	return args.Error(0)
}

func registration() models.UserRegistration {
	return models.UserRegistration{
		Email:    "asha@example.com",
		Username: "asha",
		FullName: "Asha Verma",
		Password: "correct horse battery",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "asha@example.com").Return(nil, userRepo.ErrNotFound)
	repo.On("GetByUsername", mock.Anything, "asha").Return(nil, userRepo.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	svc := &DefaultUserService{Repo: repo}
	u, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	assert.True(t, u.IsActive)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "correct horse battery", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse battery")))
	repo.AssertExpectations(t)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "asha@example.com").Return(&models.User{ID: 1}, nil)

	svc := &DefaultUserService{Repo: repo}
	_, err := svc.Register(context.Background(), registration())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "asha@example.com").Return(nil, userRepo.ErrNotFound)
	repo.On("GetByUsername", mock.Anything, "asha").Return(&models.User{ID: 2}, nil)

	svc := &DefaultUserService{Repo: repo}
	_, err := svc.Register(context.Background(), registration())
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticateUnknownAccount(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, userRepo.ErrNotFound)
	repo.On("GetByEmail", mock.Anything, "ghost").Return(nil, userRepo.ErrNotFound)

	svc := &DefaultUserService{Repo: repo}
	_, _, err := svc.Authenticate(context.Background(), models.UserCredentials{Identifier: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "asha").Return(&models.User{
		ID: 1, Username: "asha", PasswordHash: string(hash), IsActive: true,
	}, nil)

	svc := &DefaultUserService{Repo: repo}
	_, _, err = svc.Authenticate(context.Background(), models.UserCredentials{Identifier: "asha", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetByUsername", mock.Anything, "asha").Return(&models.User{
		ID: 1, Username: "asha", PasswordHash: string(hash), IsActive: false,
	}, nil)

	svc := &DefaultUserService{Repo: repo}
	_, _, err = svc.Authenticate(context.Background(), models.UserCredentials{Identifier: "asha", Password: "right"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
