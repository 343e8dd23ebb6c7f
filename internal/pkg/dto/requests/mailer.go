package requests

// BookingConfirmationPayload is published to the mailer queue after a booking
// is admitted; a separate consumer turns it into the confirmation email.
type BookingConfirmationPayload struct {
	BookingID       string `json:"booking_id"`
	Treatment       string `json:"treatment"`
	AppointmentDate string `json:"appointment_date"`
	Slot            string `json:"slot"`
	Email           string `json:"email"`
	PatientName     string `json:"patient_name,omitempty"`
}
