package doctors

import (
	"context"
	"io"
	"mime/multipart"
	"sync"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	ObjectStorage    contracts.ObjectStorageService
	DriverConfig     *config.DriverConfig
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	objectStorage contracts.ObjectStorageService,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		instance := &doctorUsecase{
			DoctorRepository: doctorRepository,
			ObjectStorage:    objectStorage,
			DriverConfig:     driverConfig,
			Log:              logger,
		}
		doctorUsecaseInstance = instance
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) AddDoctor(ctx context.Context, request *requests.CreateDoctor) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.AddDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	doctor := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		Image:     request.Image,
	}
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.AddDoctor error inserting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("doctorUsecase.AddDoctor completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return doctorID, nil
}

func (uc *doctorUsecase) RemoveDoctor(ctx context.Context, doctorID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.RemoveDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}

func (uc *doctorUsecase) UploadDoctorPhoto(ctx context.Context, doctorID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.DoctorPhoto, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UploadDoctorPhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	objectName, err := uc.ObjectStorage.UploadFile(ctx, file, fileHeader, uc.DriverConfig.Minio.BucketName)
	if err != nil {
		uc.Log.Error("doctorUsecase.UploadDoctorPhoto error uploading photo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.DoctorRepository.UpdateImageByID(ctx, doctorID, objectName); err != nil {
		uc.Log.Error("doctorUsecase.UploadDoctorPhoto error updating doctor image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.UploadDoctorPhoto completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.DoctorPhoto{
		DoctorID: doctorID,
		Image:    objectName,
	}, nil
}
