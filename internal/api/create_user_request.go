package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name       string `json:"name" validate:"required" example:"John Doe"`
	Email      string `json:"email" validate:"required" example:"john@example.com"`
	Password   string `json:"password" validate:"required" example:"password"`
	IsCustomer bool   `json:"is_customer" example:"true"`
}
