package models

type Booking struct {
	ID              string  `json:"_id,omitempty" bson:"_id,omitempty"`
	Treatment       string  `json:"treatment" bson:"treatment"`
	AppointmentDate string  `json:"appointmentDate" bson:"appointmentDate"`
	PatientName     string  `json:"patientName,omitempty" bson:"patientName,omitempty"`
	Email           string  `json:"email" bson:"email"`
	Phone           string  `json:"phone,omitempty" bson:"phone,omitempty"`
	Slot            string  `json:"slot" bson:"slot"`
	Price           float64 `json:"price,omitempty" bson:"price,omitempty"`
	Paid            bool    `json:"paid" bson:"paid"`
	TransactionID   string  `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
}
