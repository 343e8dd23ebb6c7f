package users

import (
	"context"
	"testing"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"

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

func newTestUserUsecase(repo *MockUserRepository) *userUsecase {
	return &userUsecase{
		UserRepository: repo,
		Log:            zap.NewNop(),
	}
}

func TestRegister(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newTestUserUsecase(repo)

	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("user-1", nil)

	userID, err := uc.Register(context.Background(), &requests.CreateUser{
		Name:  "Jane Roe",
		Email: "jane@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestPromoteToAdmin_UsesAdminRole(t *testing.T) {
	repo := new(MockUserRepository)
	uc := newTestUserUsecase(repo)

	repo.On("UpsertRoleByID", mock.Anything, "user-1", constvars.RoleAdmin).Return(nil)

	err := uc.PromoteToAdmin(context.Background(), "user-1")

	assert.NoError(t, err)
	repo.AssertCalled(t, "UpsertRoleByID", mock.Anything, "user-1", constvars.RoleAdmin)
}

func TestCheckAdmin(t *testing.T) {
	t.Run("admin user", func(t *testing.T) {
		repo := new(MockUserRepository)
		uc := newTestUserUsecase(repo)
		repo.On("FindByEmail", mock.Anything, "admin@example.com").Return(&models.User{
			Email: "admin@example.com",
			Role:  constvars.RoleAdmin,
		}, nil)

		status, err := uc.CheckAdmin(context.Background(), "admin@example.com")

		assert.NoError(t, err)
		assert.True(t, status.IsAdmin)
	})

	t.Run("regular user", func(t *testing.T) {
		repo := new(MockUserRepository)
		uc := newTestUserUsecase(repo)
		repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
			Email: "jane@example.com",
		}, nil)

		status, err := uc.CheckAdmin(context.Background(), "jane@example.com")

		assert.NoError(t, err)
		assert.False(t, status.IsAdmin)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		uc := newTestUserUsecase(repo)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		status, err := uc.CheckAdmin(context.Background(), "ghost@example.com")

		assert.NoError(t, err)
		assert.False(t, status.IsAdmin)
	})
}
