package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/appointmentOptions", appointmentController.GetAppointmentOptions)
	router.Get("/appointmentSpecialty", appointmentController.GetAppointmentSpecialties)
}
