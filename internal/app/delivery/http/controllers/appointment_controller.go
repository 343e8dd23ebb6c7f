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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	onceAppointmentController.Do(func() {
		instance := &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
		}
		appointmentControllerInstance = instance
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) GetAppointmentOptions(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	date := r.URL.Query().Get(constvars.QueryParamDate)
	if date == "" {
		ctrl.Log.Error("Date query parameter missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.QueryParamDate))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	options, err := ctrl.AppointmentUsecase.GetAvailability(ctx, date)
	if err != nil {
		ctrl.Log.Error("Failed to fetch appointment availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentKey, date),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentOptionsFetchedSuccess, options)
}

func (ctrl *AppointmentController) GetAppointmentSpecialties(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	specialties, err := ctrl.AppointmentUsecase.GetSpecialties(ctx)
	if err != nil {
		ctrl.Log.Error("Failed to fetch appointment specialties",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentSpecialtiesFetchedSuccess, specialties)
}
