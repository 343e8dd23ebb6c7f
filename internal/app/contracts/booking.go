package contracts

import (
	"context"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingAdmission, error)
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (bookingID string, err error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error)
	FindByAdmissionKey(ctx context.Context, treatment, appointmentDate, email string) ([]models.Booking, error)
	MarkPaid(ctx context.Context, bookingID, transactionID string) error
	FindUnpaidByIDs(ctx context.Context, bookingIDs []string) ([]models.Booking, error)
}
