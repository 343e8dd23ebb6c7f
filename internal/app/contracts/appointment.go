package contracts

import (
	"context"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	GetAvailability(ctx context.Context, date string) ([]models.AppointmentOption, error)
	GetSpecialties(ctx context.Context) ([]responses.AppointmentSpecialty, error)
}

type AppointmentOptionRepository interface {
	FindAll(ctx context.Context) ([]models.AppointmentOption, error)
	FindAllNames(ctx context.Context) ([]responses.AppointmentSpecialty, error)
}
