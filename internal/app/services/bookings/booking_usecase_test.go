package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error) {
	args := m.Called(ctx, appointmentDate)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByAdmissionKey(ctx context.Context, treatment, appointmentDate, email string) ([]models.Booking, error) {
	args := m.Called(ctx, treatment, appointmentDate, email)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) error {
	args := m.Called(ctx, bookingID, transactionID)
	return args.Error(0)
}

func (m *MockBookingRepository) FindUnpaidByIDs(ctx context.Context, bookingIDs []string) ([]models.Booking, error) {
	args := m.Called(ctx, bookingIDs)
	return args.Get(0).([]models.Booking), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockBookingNotifier struct {
	mock.Mock
}

func (m *MockBookingNotifier) PublishBookingConfirmation(ctx context.Context, payload *requests.BookingConfirmationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newTestBookingUsecase(repo *MockBookingRepository, locker *MockLockerService, notifier *MockBookingNotifier) *bookingUsecase {
	return &bookingUsecase{
		BookingRepository: repo,
		LockerService:     locker,
		BookingNotifier:   notifier,
		Log:               zap.NewNop(),
	}
}

func validBookingRequest() *requests.CreateBooking {
	return &requests.CreateBooking{
		Treatment:       "Teeth Orthodontics",
		AppointmentDate: "2026-09-01",
		PatientName:     "Jane Roe",
		Email:           "jane@example.com",
		Phone:           "555-0100",
		Slot:            "09.00 AM - 10.00 AM",
		Price:           120,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	locker := new(MockLockerService)
	notifier := new(MockBookingNotifier)
	uc := newTestBookingUsecase(repo, locker, notifier)

	locker.On("TryLock", mock.Anything, "booking-lock:Teeth Orthodontics:2026-09-01:09.00 AM - 10.00 AM", mock.Anything).Return(true, "lock-value", nil)
	locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
	repo.On("FindByAdmissionKey", mock.Anything, "Teeth Orthodontics", "2026-09-01", "jane@example.com").Return([]models.Booking{}, nil)
	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return("booking-1", nil)
	notifier.On("PublishBookingConfirmation", mock.Anything, mock.AnythingOfType("*requests.BookingConfirmationPayload")).Return(nil)

	admission, err := uc.CreateBooking(context.Background(), validBookingRequest())

	assert.NoError(t, err)
	assert.True(t, admission.Acknowledged)
	assert.Equal(t, "booking-1", admission.BookingID)
	repo.AssertCalled(t, "CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking"))
	notifier.AssertCalled(t, "PublishBookingConfirmation", mock.Anything, mock.AnythingOfType("*requests.BookingConfirmationPayload"))
	locker.AssertCalled(t, "Unlock", mock.Anything, mock.Anything, "lock-value")
}

func TestCreateBooking_DuplicateAdmissionRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	locker := new(MockLockerService)
	notifier := new(MockBookingNotifier)
	uc := newTestBookingUsecase(repo, locker, notifier)

	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
	locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
	repo.On("FindByAdmissionKey", mock.Anything, "Teeth Orthodontics", "2026-09-01", "jane@example.com").Return([]models.Booking{
		{Treatment: "Teeth Orthodontics", AppointmentDate: "2026-09-01", Email: "jane@example.com"},
	}, nil)

	admission, err := uc.CreateBooking(context.Background(), validBookingRequest())

	assert.NoError(t, err)
	assert.False(t, admission.Acknowledged)
	assert.Equal(t, "You have already booked: 2026-09-01", admission.Message)
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "PublishBookingConfirmation", mock.Anything, mock.Anything)
}

func TestCreateBooking_LockContentionConflicts(t *testing.T) {
	repo := new(MockBookingRepository)
	locker := new(MockLockerService)
	notifier := new(MockBookingNotifier)
	uc := newTestBookingUsecase(repo, locker, notifier)

	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

	admission, err := uc.CreateBooking(context.Background(), validBookingRequest())

	assert.Nil(t, admission)
	assert.Error(t, err)
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	repo.AssertNotCalled(t, "FindByAdmissionKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_NotifierFailureStillAdmits(t *testing.T) {
	repo := new(MockBookingRepository)
	locker := new(MockLockerService)
	notifier := new(MockBookingNotifier)
	uc := newTestBookingUsecase(repo, locker, notifier)

	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
	locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
	repo.On("FindByAdmissionKey", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]models.Booking{}, nil)
	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return("booking-2", nil)
	notifier.On("PublishBookingConfirmation", mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	admission, err := uc.CreateBooking(context.Background(), validBookingRequest())

	assert.NoError(t, err)
	assert.True(t, admission.Acknowledged)
	assert.Equal(t, "booking-2", admission.BookingID)
}
