package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", doctorController.ListDoctors)
	router.With(middlewares.Authenticate).Post("/", doctorController.AddDoctor)
	router.With(middlewares.Authenticate).Post("/{doctorID}/photo", doctorController.UploadDoctorPhoto)
	router.With(middlewares.Authenticate).Delete("/{doctorID}", doctorController.RemoveDoctor)
}
