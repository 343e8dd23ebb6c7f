package auth

import (
	"context"
	"testing"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpsertRoleByID(ctx context.Context, userID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func newTestAuthUsecase(repo *MockUserRepository, secret string) *authUsecase {
	return &authUsecase{
		UserRepository: repo,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{
				Secret:        secret,
				ExpTimeInHour: 1,
			},
		},
		Log: zap.NewNop(),
	}
}

func TestIssueToken_RegisteredUser(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newTestAuthUsecase(repo, "test-secret")

	repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
		Email: "jane@example.com",
	}, nil)

	token, err := uc.IssueToken(context.Background(), "jane@example.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)

	email, err := utils.ParseJWT(token.AccessToken, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)
}

func TestIssueToken_UnknownEmailGetsEmptyToken(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newTestAuthUsecase(repo, "test-secret")

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	token, err := uc.IssueToken(context.Background(), "ghost@example.com")

	assert.NoError(t, err)
	assert.Empty(t, token.AccessToken)
}
