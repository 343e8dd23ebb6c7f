package users

import (
	"context"
	"sync"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository: userRepository,
			Log:            logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

func (uc *userUsecase) Register(ctx context.Context, request *requests.CreateUser) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user := &models.User{
		Name:  request.Name,
		Email: request.Email,
	}
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.Register error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("userUsecase.Register completed successfully",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return userID, nil
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.UserRepository.FindAll(ctx)
}

// PromoteToAdmin is idempotent: promoting an admin again is a no-op update.
func (uc *userUsecase) PromoteToAdmin(ctx context.Context, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.PromoteToAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	return uc.UserRepository.UpsertRoleByID(ctx, userID, constvars.RoleAdmin)
}

func (uc *userUsecase) CheckAdmin(ctx context.Context, email string) (*responses.AdminStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CheckAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	isAdmin := user != nil && user.IsAdmin()
	return &responses.AdminStatus{IsAdmin: isAdmin}, nil
}
