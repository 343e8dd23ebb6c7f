package routers

import (
	"doctorsportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *controllers.AuthController) {
	router.Get("/jwt", authController.IssueToken)
}
