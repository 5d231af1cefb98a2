package api

// MessageResponse 單一訊息回應，成功與錯誤共用
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"User not found"`
}
