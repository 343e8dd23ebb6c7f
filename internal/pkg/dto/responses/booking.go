package responses

// BookingAdmission mirrors the document store's insertion acknowledgment:
// Acknowledged is false when the duplicate-admission check rejects the
// request, in which case Message explains why and no record was inserted.
type BookingAdmission struct {
	Acknowledged bool   `json:"acknowledged"`
	BookingID    string `json:"bookingId,omitempty"`
	Message      string `json:"message,omitempty"`
}
