package config

import (
	"doctorsportal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "doctorsportal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "doctor-photos"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                           utils.GetEnvString("APP_ENV", "development"),
			Port:                          utils.GetEnvString("APP_PORT", ":5000"),
			Version:                       utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:                utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                   utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:               utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MailerQueue:                   utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "booking_confirmation_queue"),
			PaymentReconcileIntervalInSec: utils.GetEnvInt("APP_PAYMENT_RECONCILE_INTERVAL_IN_SEC", 60),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:   utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.stripe.com/v1"),
			SecretKey: utils.GetEnvString("PAYMENT_GATEWAY_SECRET_KEY", ""),
		},
	}
}
