package get_review_form

// Request модель запроса формы отзыва по одноразовой ссылке
type Request struct {
	Token string // Значение токена из ссылки
}

// Response данные для предзаполнения формы отзыва
type Response struct {
	Token      string `json:"token"`
	ClientName string `json:"clientName"`
	MasterCode string `json:"masterCode"`
	MasterName string `json:"masterName"`
	ExpiresAt  string `json:"expiresAt"`
}
