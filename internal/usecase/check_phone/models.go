package check_phone

// Request модель запроса проверки телефона
type Request struct {
	MasterCode string // Код мастера
	Phone      string // Телефон клиента
	Name       string // Имя клиента (опционально)
}

// Response результат проверки
type Response struct {
	Confirmed bool `json:"confirmed"`
}
