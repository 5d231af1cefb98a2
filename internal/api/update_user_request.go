// File: internal/api/update_user_request.go
package api

// 欄位皆為選填，未帶入者維持原值；帶入空字串視為錯誤
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitnil,min=1" example:"Jane Doe"`
	Email      *string `json:"email,omitempty" validate:"omitnil,min=1" example:"jane@example.com"`
	Password   *string `json:"password,omitempty" validate:"omitnil,min=1" example:"new-password"`
	IsCustomer *bool   `json:"is_customer,omitempty" example:"false"`
}
