package payments

import (
	"context"
	"sync"
	"time"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository contracts.PaymentRepository
	BookingRepository contracts.BookingRepository
	PaymentGateway    contracts.PaymentGatewayService
	Log               *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	bookingRepository contracts.BookingRepository,
	paymentGateway contracts.PaymentGatewayService,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			PaymentRepository: paymentRepository,
			BookingRepository: bookingRepository,
			PaymentGateway:    paymentGateway,
			Log:               logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64("price", request.Price),
	)

	// The gateway wants the amount in the currency's smallest unit.
	amount := int64(request.Price * 100)
	clientSecret, err := uc.PaymentGateway.CreatePaymentIntent(ctx, amount, constvars.PaymentCurrencyUSD)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreatePaymentIntent gateway error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.PaymentIntent{ClientSecret: clientSecret}, nil
}

// RecordPayment stores the payment first and marks the booking paid second.
// MarkPaid is an idempotent $set, so a crash between the two steps is
// repaired by the next reconcile pass instead of being lost.
func (uc *paymentUsecase) RecordPayment(ctx context.Context, request *requests.RecordPayment) (*responses.PaymentRecorded, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.RecordPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	payment := &models.Payment{
		BookingID:     request.BookingID,
		Email:         request.Email,
		Amount:        request.Amount,
		TransactionID: request.TransactionID,
		CreatedAt:     time.Now().UTC(),
	}
	paymentID, err := uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		uc.Log.Error("paymentUsecase.RecordPayment error inserting payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.BookingRepository.MarkPaid(ctx, request.BookingID, request.TransactionID); err != nil {
		uc.Log.Error("paymentUsecase.RecordPayment error marking booking paid, reconciler will retry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, request.BookingID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("paymentUsecase.RecordPayment completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
	)
	return &responses.PaymentRecorded{
		PaymentID:     paymentID,
		BookingID:     request.BookingID,
		TransactionID: request.TransactionID,
	}, nil
}

// ReconcileUnpaidBookings re-applies MarkPaid for every recorded payment
// whose booking is still flagged unpaid. Returns how many were repaired.
func (uc *paymentUsecase) ReconcileUnpaidBookings(ctx context.Context) (int, error) {
	payments, err := uc.PaymentRepository.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(payments) == 0 {
		return 0, nil
	}

	bookingIDs := make([]string, 0, len(payments))
	transactionByBooking := make(map[string]string, len(payments))
	for _, payment := range payments {
		bookingIDs = append(bookingIDs, payment.BookingID)
		transactionByBooking[payment.BookingID] = payment.TransactionID
	}

	unpaid, err := uc.BookingRepository.FindUnpaidByIDs(ctx, bookingIDs)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, booking := range unpaid {
		transactionID := transactionByBooking[booking.ID]
		if err := uc.BookingRepository.MarkPaid(ctx, booking.ID, transactionID); err != nil {
			uc.Log.Error("paymentUsecase.ReconcileUnpaidBookings error marking booking paid",
				zap.String(constvars.LoggingBookingIDKey, booking.ID),
				zap.Error(err),
			)
			continue
		}
		repaired++
	}

	if repaired > 0 {
		uc.Log.Info("paymentUsecase.ReconcileUnpaidBookings repaired bookings",
			zap.Int("repaired", repaired),
		)
	}
	return repaired, nil
}
