package requests

type CreateDoctor struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Specialty string `json:"specialty" validate:"required"`
	Image     string `json:"image"`
}
