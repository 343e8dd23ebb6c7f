package contracts

import (
	"context"
	"io"
	"mime/multipart"

	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	AddDoctor(ctx context.Context, request *requests.CreateDoctor) (doctorID string, err error)
	RemoveDoctor(ctx context.Context, doctorID string) error
	UploadDoctorPhoto(ctx context.Context, doctorID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.DoctorPhoto, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	UpdateImageByID(ctx context.Context, doctorID, image string) error
	DeleteByID(ctx context.Context, doctorID string) error
}
