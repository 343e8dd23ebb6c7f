package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Appointment messages
	AppointmentOptionsFetchedSuccess     = "appointment options fetched successfully"
	AppointmentSpecialtiesFetchedSuccess = "appointment specialties fetched successfully"

	// Booking messages
	BookingFetchedSuccess  = "booking fetched successfully"
	BookingsFetchedSuccess = "bookings fetched successfully"
	BookingProcessed       = "booking request processed"

	// User messages
	UserCreatedSuccess  = "user created successfully"
	UsersFetchedSuccess = "users fetched successfully"
	UserPromotedSuccess = "user promoted to admin successfully"
	AdminStatusChecked  = "admin status checked successfully"
	TokenIssuedOrDenied = "token request processed"

	// Doctor messages
	DoctorsFetchedSuccess      = "doctors fetched successfully"
	DoctorCreatedSuccess       = "doctor added successfully"
	DoctorDeletedSuccess       = "doctor removed successfully"
	DoctorPhotoUploadedSuccess = "doctor photo uploaded successfully"

	// Payment messages
	PaymentIntentCreatedSuccess = "payment intent created successfully"
	PaymentRecordedSuccess      = "payment recorded successfully"
)
