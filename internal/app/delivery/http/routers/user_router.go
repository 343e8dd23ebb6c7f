package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Get("/", userController.ListUsers)
	router.Post("/", userController.Register)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/admin/{userID}", userController.PromoteToAdmin)
	router.Get("/admin/{email}", userController.CheckAdmin)
}
