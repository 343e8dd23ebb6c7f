package models

type Doctor struct {
	ID        string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Specialty string `json:"specialty" bson:"specialty"`
	Image     string `json:"image,omitempty" bson:"image,omitempty"`
}
