package submit_review

// Request модель запроса на публикацию отзыва
// Token передается из одноразовой ссылки; без него выполняется проверка
// телефона по истории записей мастера
type Request struct {
	Token      string // Одноразовый токен (опционально)
	MasterCode string // Код мастера
	ClientName string // Имя клиента
	Phone      string // Телефон клиента
	Stars      int    // Оценка 1-5
	Text       string // Текст отзыва
}

// Response модель ответа с созданным отзывом
type Response struct {
	ID          int64  `json:"id"`
	MasterCode  string `json:"masterCode"`
	MasterName  string `json:"masterName"`
	ClientName  string `json:"clientName"`
	Stars       int    `json:"stars"`
	Text        string `json:"text"`
	IsPublished bool   `json:"isPublished"`
	IsVerified  bool   `json:"isVerified"`
	CreatedAt   string `json:"createdAt"`
}

// ValidationErrors накопленные ошибки валидации по полям
type ValidationErrors map[string]string

// Error реализует интерфейс error
func (v ValidationErrors) Error() string {
	return ErrValidation.Error()
}

// Is позволяет проверять ValidationErrors через errors.Is(err, ErrValidation)
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
