package responses

type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentRecorded struct {
	PaymentID     string `json:"paymentId"`
	BookingID     string `json:"bookingId"`
	TransactionID string `json:"transactionId"`
}
