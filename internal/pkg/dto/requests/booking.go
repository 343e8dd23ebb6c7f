package requests

type CreateBooking struct {
	Treatment       string  `json:"treatment" validate:"required"`
	AppointmentDate string  `json:"appointmentDate" validate:"required"`
	PatientName     string  `json:"patientName"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone"`
	Slot            string  `json:"slot" validate:"required"`
	Price           float64 `json:"price"`
}
