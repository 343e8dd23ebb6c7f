package payments

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

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	args := m.Called(ctx, payment)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Payment), args.Error(1)
}

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

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}

func newTestPaymentUsecase(paymentRepo *MockPaymentRepository, bookingRepo *MockBookingRepository, gateway *MockPaymentGateway) *paymentUsecase {
	return &paymentUsecase{
		PaymentRepository: paymentRepo,
		BookingRepository: bookingRepo,
		PaymentGateway:    gateway,
		Log:               zap.NewNop(),
	}
}

func TestCreatePaymentIntent_ConvertsToSmallestUnit(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	bookingRepo := new(MockBookingRepository)
	gateway := new(MockPaymentGateway)
	uc := newTestPaymentUsecase(paymentRepo, bookingRepo, gateway)

	gateway.On("CreatePaymentIntent", mock.Anything, int64(12050), constvars.PaymentCurrencyUSD).Return("pi_secret_123", nil)

	intent, err := uc.CreatePaymentIntent(context.Background(), &requests.CreatePaymentIntent{Price: 120.50})

	assert.NoError(t, err)
	assert.Equal(t, "pi_secret_123", intent.ClientSecret)
	gateway.AssertCalled(t, "CreatePaymentIntent", mock.Anything, int64(12050), constvars.PaymentCurrencyUSD)
}

func TestRecordPayment_StoresThenMarksPaid(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	bookingRepo := new(MockBookingRepository)
	gateway := new(MockPaymentGateway)
	uc := newTestPaymentUsecase(paymentRepo, bookingRepo, gateway)

	paymentRepo.On("CreatePayment", mock.Anything, mock.AnythingOfType("*models.Payment")).Return("payment-1", nil)
	bookingRepo.On("MarkPaid", mock.Anything, "booking-1", "txn-42").Return(nil)

	recorded, err := uc.RecordPayment(context.Background(), &requests.RecordPayment{
		BookingID:     "booking-1",
		Email:         "jane@example.com",
		Amount:        120.50,
		TransactionID: "txn-42",
	})

	assert.NoError(t, err)
	assert.Equal(t, "payment-1", recorded.PaymentID)
	assert.Equal(t, "booking-1", recorded.BookingID)
	assert.Equal(t, "txn-42", recorded.TransactionID)
	bookingRepo.AssertCalled(t, "MarkPaid", mock.Anything, "booking-1", "txn-42")
}

func TestReconcileUnpaidBookings(t *testing.T) {
	t.Run("repairs bookings missed by record payment", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		gateway := new(MockPaymentGateway)
		uc := newTestPaymentUsecase(paymentRepo, bookingRepo, gateway)

		paymentRepo.On("FindAll", mock.Anything).Return([]models.Payment{
			{BookingID: "booking-1", TransactionID: "txn-1"},
			{BookingID: "booking-2", TransactionID: "txn-2"},
		}, nil)
		bookingRepo.On("FindUnpaidByIDs", mock.Anything, []string{"booking-1", "booking-2"}).Return([]models.Booking{
			{ID: "booking-2"},
		}, nil)
		bookingRepo.On("MarkPaid", mock.Anything, "booking-2", "txn-2").Return(nil)

		repaired, err := uc.ReconcileUnpaidBookings(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, repaired)
		bookingRepo.AssertCalled(t, "MarkPaid", mock.Anything, "booking-2", "txn-2")
		bookingRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, "booking-1", "txn-1")
	})

	t.Run("no payments is a no-op", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		bookingRepo := new(MockBookingRepository)
		gateway := new(MockPaymentGateway)
		uc := newTestPaymentUsecase(paymentRepo, bookingRepo, gateway)

		paymentRepo.On("FindAll", mock.Anything).Return([]models.Payment{}, nil)

		repaired, err := uc.ReconcileUnpaidBookings(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, repaired)
		bookingRepo.AssertNotCalled(t, "FindUnpaidByIDs", mock.Anything, mock.Anything)
	})
}
