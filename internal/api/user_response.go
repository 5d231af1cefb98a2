package api

import (
	"time"

	"user-api/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID         int       `json:"id" example:"1"`
	Name       string    `json:"name" example:"John Doe"`
	Email      string    `json:"email" example:"john@example.com"`
	IsCustomer bool      `json:"is_customer" example:"true"`
	CreatedAt  time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 轉換為對外格式，不含密碼
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsCustomer: u.IsCustomer,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
