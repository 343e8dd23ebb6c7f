package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRequestKey        = "request"
	LoggingErrorTypeKey      = "error_type"
	LoggingEmailKey          = "email"
	LoggingUserIDKey         = "user_id"
	LoggingBookingIDKey      = "booking_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingPaymentIDKey      = "payment_id"
	LoggingTransactionIDKey  = "transaction_id"
	LoggingAppointmentKey    = "appointment_date"
	LoggingTreatmentKey      = "treatment"
	LoggingSlotKey           = "slot"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingObjectNameKey     = "object_name"
	LoggingQueueKey          = "queue"
)
