package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
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

const testSecret = "middleware-test-secret"

func newTestMiddlewares(userRepository *MockUserRepository) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		JWT: config.JWT{
			Secret:        testSecret,
			ExpTimeInHour: 1,
		},
	}, userRepository)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	m := newTestMiddlewares(new(MockUserRepository))

	t.Run("missing token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)
		rec := httptest.NewRecorder()

		m.Authenticate(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-token")
		rec := httptest.NewRecorder()

		m.Authenticate(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token passes email downstream", func(t *testing.T) {
		token, err := utils.GenerateJWT("jane@example.com", testSecret, time.Hour)
		assert.NoError(t, err)

		var gotEmail string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotEmail, _ = r.Context().Value(constvars.CONTEXT_PATIENT_EMAIL_KEY).(string)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
		rec := httptest.NewRecorder()

		m.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jane@example.com", gotEmail)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("non admin is forbidden", func(t *testing.T) {
		userRepository := new(MockUserRepository)
		userRepository.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
			Email: "jane@example.com",
		}, nil)
		m := newTestMiddlewares(userRepository)

		req := httptest.NewRequest("GET", "/doctors", nil)
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_PATIENT_EMAIL_KEY, "jane@example.com")
		rec := httptest.NewRecorder()

		m.RequireAdmin(okHandler()).ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown email is forbidden", func(t *testing.T) {
		userRepository := new(MockUserRepository)
		userRepository.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
		m := newTestMiddlewares(userRepository)

		req := httptest.NewRequest("GET", "/doctors", nil)
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_PATIENT_EMAIL_KEY, "ghost@example.com")
		rec := httptest.NewRecorder()

		m.RequireAdmin(okHandler()).ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes through", func(t *testing.T) {
		userRepository := new(MockUserRepository)
		userRepository.On("FindByEmail", mock.Anything, "admin@example.com").Return(&models.User{
			Email: "admin@example.com",
			Role:  constvars.RoleAdmin,
		}, nil)
		m := newTestMiddlewares(userRepository)

		req := httptest.NewRequest("GET", "/doctors", nil)
		ctx := context.WithValue(req.Context(), constvars.CONTEXT_PATIENT_EMAIL_KEY, "admin@example.com")
		rec := httptest.NewRecorder()

		m.RequireAdmin(okHandler()).ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
