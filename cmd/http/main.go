package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/delivery/http/controllers"
	"doctorsportal-service/internal/app/delivery/http/middlewares"
	"doctorsportal-service/internal/app/delivery/http/routers"
	"doctorsportal-service/internal/app/drivers/database"
	"doctorsportal-service/internal/app/drivers/logger"
	"doctorsportal-service/internal/app/drivers/messaging"
	"doctorsportal-service/internal/app/drivers/storage"
	"doctorsportal-service/internal/app/services/appointments"
	"doctorsportal-service/internal/app/services/auth"
	"doctorsportal-service/internal/app/services/bookings"
	"doctorsportal-service/internal/app/services/doctors"
	"doctorsportal-service/internal/app/services/payments"
	"doctorsportal-service/internal/app/services/shared/locker"
	"doctorsportal-service/internal/app/services/shared/mailer"
	paymentgateway "doctorsportal-service/internal/app/services/shared/payment_gateway"
	redisrepo "doctorsportal-service/internal/app/services/shared/redis"
	miniostorage "doctorsportal-service/internal/app/services/shared/storage"
	"doctorsportal-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during dependency shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	objectStorage := miniostorage.NewMinioStorage(bootstrap.Minio)
	paymentGateway := paymentgateway.NewStripeService(bootstrap.InternalConfig)
	bookingNotifier, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.MailerQueue)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to set up booking notifier", zap.Error(err))
	}

	// Repositories
	appointmentOptionRepository := appointments.NewAppointmentOptionMongoRepository(bootstrap.MongoDB, dbName)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, userRepository)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentOptionRepository, bookingRepository, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Booking
	bookingUsecase := bookings.NewBookingUsecase(bookingRepository, lockService, bookingNotifier, bootstrap.Logger)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	// User
	userUsecase := users.NewUserUsecase(userRepository, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, objectStorage, bootstrap.DriverConfig, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Payment
	paymentUsecase := payments.NewPaymentUsecase(paymentRepository, bookingRepository, paymentGateway, bootstrap.Logger)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	reconcileInterval := time.Duration(bootstrap.InternalConfig.App.PaymentReconcileIntervalInSec) * time.Second
	bootstrap.WorkerStop = payments.StartReconciler(paymentUsecase, reconcileInterval, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		appointmentController,
		bookingController,
		userController,
		authController,
		doctorController,
		paymentController,
	)
}
