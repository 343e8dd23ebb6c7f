package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxPhotoUploadBytes = 10 << 20

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

var (
	doctorControllerInstance *DoctorController
	onceDoctorController     sync.Once
)

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	onceDoctorController.Do(func() {
		instance := &DoctorController{
			Log:           logger,
			DoctorUsecase: doctorUsecase,
		}
		doctorControllerInstance = instance
	})
	return doctorControllerInstance
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.ListDoctors(ctx)
	if err != nil {
		ctrl.Log.Error("Failed to fetch doctors",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsFetchedSuccess, doctors)
}

func (ctrl *DoctorController) AddDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.CreateDoctor)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctorID, err := ctrl.DoctorUsecase.AddDoctor(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to add doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorCreatedSuccess, map[string]string{"doctorId": doctorID})
}

func (ctrl *DoctorController) RemoveDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DoctorUsecase.RemoveDoctor(ctx, doctorID); err != nil {
		ctrl.Log.Error("Failed to remove doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorDeletedSuccess, nil)
}

func (ctrl *DoctorController) UploadDoctorPhoto(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamDoctorID))
		return
	}

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		ctrl.Log.Error("Failed to parse multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	photo, err := ctrl.DoctorUsecase.UploadDoctorPhoto(ctx, doctorID, file, fileHeader)
	if err != nil {
		ctrl.Log.Error("Failed to upload doctor photo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorPhotoUploadedSuccess, photo)
}
