package auth

import (
	"context"
	"sync"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository: userRepository,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

// IssueToken only issues tokens for registered users. Unknown emails get an
// empty accessToken instead of an error so callers can treat it as a denial.
func (uc *authUsecase) IssueToken(ctx context.Context, email string) (*responses.AccessToken, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.IssueToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.Log.Info("authUsecase.IssueToken denied token for unregistered email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
		)
		return &responses.AccessToken{AccessToken: ""}, nil
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(email, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		uc.Log.Error("authUsecase.IssueToken error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.AccessToken{AccessToken: token}, nil
}
