package responses

type AppointmentSpecialty struct {
	ID   string `json:"_id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

type DoctorPhoto struct {
	DoctorID string `json:"doctorId"`
	Image    string `json:"image"`
}
