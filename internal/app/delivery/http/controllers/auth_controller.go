package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	onceAuthController.Do(func() {
		instance := &AuthController{
			Log:         logger,
			AuthUsecase: authUsecase,
		}
		authControllerInstance = instance
	})
	return authControllerInstance
}

func (ctrl *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	email := r.URL.Query().Get(constvars.QueryParamEmail)
	if email == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.QueryParamEmail))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := ctrl.AuthUsecase.IssueToken(ctx, email)
	if err != nil {
		ctrl.Log.Error("Failed to issue token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TokenIssuedOrDenied, token)
}
