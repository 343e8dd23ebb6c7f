package bookings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

const admissionLockExpiration = 10 * time.Second

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	LockerService     contracts.LockerService
	BookingNotifier   contracts.BookingNotifier
	Log               *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	lockerService contracts.LockerService,
	bookingNotifier contracts.BookingNotifier,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			BookingRepository: bookingRepository,
			LockerService:     lockerService,
			BookingNotifier:   bookingNotifier,
			Log:               logger,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

// CreateBooking admits a booking request. The duplicate check keys on
// (treatment, date, email): one slot per treatment per day for a patient.
// The admission lock keys on (treatment, date, slot) so two concurrent
// requests cannot double-book a slot between the check and the insert.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingAdmission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		zap.String(constvars.LoggingAppointmentKey, request.AppointmentDate),
		zap.String(constvars.LoggingSlotKey, request.Slot),
	)

	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, request.Treatment, request.AppointmentDate, request.Slot)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, admissionLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAdmissionLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("bookingUsecase.CreateBooking failed to release admission lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	alreadyBooked, err := uc.BookingRepository.FindByAdmissionKey(ctx, request.Treatment, request.AppointmentDate, request.Email)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error checking existing bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(alreadyBooked) > 0 {
		uc.Log.Info("bookingUsecase.CreateBooking rejected duplicate admission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		return &responses.BookingAdmission{
			Acknowledged: false,
			Message:      fmt.Sprintf("You have already booked: %s", request.AppointmentDate),
		}, nil
	}

	booking := &models.Booking{
		Treatment:       request.Treatment,
		AppointmentDate: request.AppointmentDate,
		PatientName:     request.PatientName,
		Email:           request.Email,
		Phone:           request.Phone,
		Slot:            request.Slot,
		Price:           request.Price,
	}
	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error inserting booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Confirmation mail delivery is best effort; the admission already happened.
	if uc.BookingNotifier != nil {
		payload := &requests.BookingConfirmationPayload{
			BookingID:       bookingID,
			Treatment:       request.Treatment,
			AppointmentDate: request.AppointmentDate,
			Slot:            request.Slot,
			Email:           request.Email,
			PatientName:     request.PatientName,
		}
		if publishErr := uc.BookingNotifier.PublishBookingConfirmation(ctx, payload); publishErr != nil {
			uc.Log.Error("bookingUsecase.CreateBooking failed to publish booking confirmation",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBookingIDKey, bookingID),
				zap.Error(publishErr),
			)
		}
	}

	uc.Log.Info("bookingUsecase.CreateBooking completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return &responses.BookingAdmission{
		Acknowledged: true,
		BookingID:    bookingID,
	}, nil
}

func (uc *bookingUsecase) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.GetBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	return uc.BookingRepository.FindByID(ctx, bookingID)
}

func (uc *bookingUsecase) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListBookingsByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	return uc.BookingRepository.FindByEmail(ctx, email)
}
