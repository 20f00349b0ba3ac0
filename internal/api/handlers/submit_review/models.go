package submit_review

import (
	submitReview "github.com/m04kA/SMC-SalonService/internal/usecase/submit_review"
)

// SubmitReviewRequest HTTP request model
// token передается при переходе по одноразовой ссылке; без него мастер
// и телефон обязательны
type SubmitReviewRequest struct {
	Token      string `json:"token,omitempty"`
	MasterCode string `json:"masterCode,omitempty"`
	ClientName string `json:"clientName"`
	Phone      string `json:"phone,omitempty"`
	Stars      int    `json:"stars"`
	Text       string `json:"text"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitReviewRequest) ToUseCaseRequest() *submitReview.Request {
	return &submitReview.Request{
		Token:      r.Token,
		MasterCode: r.MasterCode,
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Stars:      r.Stars,
		Text:       r.Text,
	}
}
