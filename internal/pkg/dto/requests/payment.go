package requests

type CreatePaymentIntent struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type RecordPayment struct {
	BookingID     string  `json:"bookingId" validate:"required"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TransactionID string  `json:"transactionId" validate:"required"`
}
