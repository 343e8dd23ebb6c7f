package models

// AppointmentOption is a treatment template. The slot list is fixed per
// option regardless of date; remaining availability is derived, never stored.
type AppointmentOption struct {
	ID    string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string   `json:"name" bson:"name"`
	Price float64  `json:"price" bson:"price"`
	Slots []string `json:"slots" bson:"slots"`
}
