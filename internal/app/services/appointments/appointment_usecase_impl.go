package appointments

import (
	"context"
	"sync"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentOptionRepository contracts.AppointmentOptionRepository
	BookingRepository           contracts.BookingRepository
	Log                         *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentOptionRepository contracts.AppointmentOptionRepository,
	bookingRepository contracts.BookingRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentOptionRepository: appointmentOptionRepository,
			BookingRepository:           bookingRepository,
			Log:                         logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

// GetAvailability reduces every option's slot template to the slots not yet
// booked on the requested date. A date with zero bookings returns the
// templates unchanged; a fully booked option comes back with an empty slot
// list, which the caller must treat as "fully booked", not as an error.
func (uc *appointmentUsecase) GetAvailability(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, date),
	)

	appointmentOptions, err := uc.AppointmentOptionRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetAvailability error fetching appointment options",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	alreadyBooked, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetAvailability error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	bookedSlotsByTreatment := make(map[string]map[string]bool, len(alreadyBooked))
	for _, booking := range alreadyBooked {
		slots, ok := bookedSlotsByTreatment[booking.Treatment]
		if !ok {
			slots = make(map[string]bool)
			bookedSlotsByTreatment[booking.Treatment] = slots
		}
		slots[booking.Slot] = true
	}

	for i, option := range appointmentOptions {
		bookedSlots := bookedSlotsByTreatment[option.Name]
		if len(bookedSlots) == 0 {
			continue
		}
		remainingSlots := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if !bookedSlots[slot] {
				remainingSlots = append(remainingSlots, slot)
			}
		}
		appointmentOptions[i].Slots = remainingSlots
	}

	uc.Log.Info("appointmentUsecase.GetAvailability completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("options", len(appointmentOptions)),
	)
	return appointmentOptions, nil
}

func (uc *appointmentUsecase) GetSpecialties(ctx context.Context) ([]responses.AppointmentSpecialty, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetSpecialties called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	specialties, err := uc.AppointmentOptionRepository.FindAllNames(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetSpecialties error fetching specialties",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return specialties, nil
}
