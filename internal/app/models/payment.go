package models

import "time"

// Payment is an append-only log entry; records are never mutated or deleted.
type Payment struct {
	ID            string    `json:"_id,omitempty" bson:"_id,omitempty"`
	BookingID     string    `json:"bookingId" bson:"bookingId"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Amount        float64   `json:"amount" bson:"amount"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
