package routers

import (
	"fmt"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	bookingController *controllers.BookingController,
	userController *controllers.UserController,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	paymentController *controllers.PaymentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			attachAppointmentRoutes(r, appointmentController)

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			attachAuthRoutes(r, authController)

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})

			attachPaymentRoutes(r, paymentController)
		})
	})
}
