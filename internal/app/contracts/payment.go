package contracts

import (
	"context"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error)
	RecordPayment(ctx context.Context, request *requests.RecordPayment) (*responses.PaymentRecorded, error)
	// ReconcileUnpaidBookings re-applies the mark-paid write for payments
	// whose booking is still unpaid, repairing a crash between the two writes.
	ReconcileUnpaidBookings(ctx context.Context) (repaired int, err error)
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (paymentID string, err error)
	FindAll(ctx context.Context) ([]models.Payment, error)
}
