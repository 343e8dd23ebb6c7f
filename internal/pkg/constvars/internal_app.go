package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PATIENT_EMAIL_KEY        ContextKey = "patient_email"
)

const (
	REQUEST_ID_PREFIX = "DRPTL_SVC_"
)

const (
	RoleAdmin = "admin"
)

const (
	MongoCollectionAppointmentOptions = "appointmentOptions"
	MongoCollectionBookings           = "bookings"
	MongoCollectionUsers              = "users"
	MongoCollectionDoctors            = "doctors"
	MongoCollectionPayments           = "payments"
)

const (
	PaymentCurrencyUSD = "usd"
)

const (
	URLParamBookingID = "bookingID"
	URLParamDoctorID  = "doctorID"
	URLParamUserID    = "userID"
	URLParamEmail     = "email"
)

const (
	QueryParamDate  = "date"
	QueryParamEmail = "email"
)

const (
	// BookingLockKeyFormat serializes admission on the slot's natural key
	// (treatment, date, slot) even though duplicate detection keys on email.
	BookingLockKeyFormat = "booking-lock:%s:%s:%s"
)
