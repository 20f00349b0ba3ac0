package check_phone

import (
	checkPhone "github.com/m04kA/SMC-SalonService/internal/usecase/check_phone"
)

const (
	msgVerified    = "запись подтверждена, отзыв будет отмечен как проверенный"
	msgNotVerified = "запись не найдена: проверьте телефон и имя"
)

// CheckPhoneResponse HTTP response model
type CheckPhoneResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkPhone.Response) *CheckPhoneResponse {
	if resp.Confirmed {
		return &CheckPhoneResponse{Verified: true, Message: msgVerified}
	}
	return &CheckPhoneResponse{Verified: false, Message: msgNotVerified}
}
