package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingAdmission, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BookingAdmission), args.Error(1)
}

func (m *MockBookingUsecase) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingUsecase) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func TestBookingRouter(t *testing.T) {
	logger := zap.NewNop()

	testSecret := "router-test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        testSecret,
			ExpTimeInHour: 1,
		},
	}

	mockBookingUsecase := new(MockBookingUsecase)
	bookingController := controllers.NewBookingController(logger, mockBookingUsecase)

	middlewareInstance := middlewares.NewMiddlewares(logger, internalConfig, nil)

	router := chi.NewRouter()
	router.Route("/bookings", func(r chi.Router) {
		attachBookingRoutes(r, middlewareInstance, bookingController)
	})

	t.Run("create booking returns admission envelope", func(t *testing.T) {
		mockBookingUsecase.On("CreateBooking", mock.Anything, mock.AnythingOfType("*requests.CreateBooking")).Return(&responses.BookingAdmission{
			Acknowledged: true,
			BookingID:    "booking-1",
		}, nil)

		body, _ := json.Marshal(requests.CreateBooking{
			Treatment:       "Teeth Orthodontics",
			AppointmentDate: "2026-09-01",
			Email:           "jane@example.com",
			Slot:            "09.00 AM - 10.00 AM",
		})

		req := httptest.NewRequest("POST", "/bookings", bytes.NewBuffer(body))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
	})

	t.Run("list bookings without token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings?email=jane@example.com", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("list bookings with mismatched email is forbidden", func(t *testing.T) {
		token, err := utils.GenerateJWT("jane@example.com", testSecret, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings?email=other@example.com", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list bookings with matching email succeeds", func(t *testing.T) {
		mockBookingUsecase.On("ListBookingsByEmail", mock.Anything, "jane@example.com").Return([]models.Booking{
			{Treatment: "Teeth Orthodontics", AppointmentDate: "2026-09-01", Email: "jane@example.com"},
		}, nil)

		token, err := utils.GenerateJWT("jane@example.com", testSecret, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/bookings?email=jane@example.com", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
