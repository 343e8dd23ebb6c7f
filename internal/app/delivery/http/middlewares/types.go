package middlewares

import (
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	UserRepository contracts.UserRepository
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, userRepository contracts.UserRepository) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		UserRepository: userRepository,
	}
}
