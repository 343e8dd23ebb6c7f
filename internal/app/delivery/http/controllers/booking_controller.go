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

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		instance := &BookingController{
			Log:            logger,
			BookingUsecase: bookingUsecase,
		}
		bookingControllerInstance = instance
	})
	return bookingControllerInstance
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.CreateBooking)
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
		ctrl.Log.Error("Request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "validation"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	admission, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to process booking admission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTreatmentKey, request.Treatment),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingProcessed, admission)
}

func (ctrl *BookingController) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	bookingID := chi.URLParam(r, constvars.URLParamBookingID)
	if bookingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamBookingID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booking, err := ctrl.BookingUsecase.GetBookingByID(ctx, bookingID)
	if err != nil {
		ctrl.Log.Error("Failed to fetch booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingFetchedSuccess, booking)
}

// ListBookings serves a patient's own bookings. The queried email must match
// the email baked into the bearer token.
func (ctrl *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	email := r.URL.Query().Get(constvars.QueryParamEmail)
	tokenEmail, _ := r.Context().Value(constvars.CONTEXT_PATIENT_EMAIL_KEY).(string)
	if email == "" || email != tokenEmail {
		ctrl.Log.Error("Queried email does not match token email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrEmailMismatch(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bookings, err := ctrl.BookingUsecase.ListBookingsByEmail(ctx, email)
	if err != nil {
		ctrl.Log.Error("Failed to fetch bookings",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingsFetchedSuccess, bookings)
}
