package contracts

import (
	"context"

	"doctorsportal-service/internal/pkg/dto/requests"
)

type BookingNotifier interface {
	PublishBookingConfirmation(ctx context.Context, payload *requests.BookingConfirmationPayload) error
}
