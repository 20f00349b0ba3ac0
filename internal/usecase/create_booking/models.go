package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName  string           // Имя клиента
	Phone       string           // Телефон клиента (в любом привычном формате)
	MasterCode  string           // Код мастера
	ServiceCode string           // Код услуги
	Date        time.Time        // Дата записи (без времени)
	Time        types.TimeString // Время слота (например, "14:30")
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64            // ID созданной записи
	ClientName  string           // Имя клиента
	Phone       string           // Нормализованный телефон
	MasterCode  string           // Код мастера
	MasterName  string           // Имя мастера
	ServiceCode string           // Код услуги
	ServiceName string           // Название услуги
	Date        time.Time        // Дата записи
	Time        types.TimeString // Время слота
	CreatedAt   time.Time        // Время создания

	// Одноразовая ссылка для отзыва о визите
	ReviewURL string
}

// ValidationErrors накопленные ошибки валидации по полям
// Все ошибки собираются за один проход, чтобы клиент получил полный список
type ValidationErrors map[string]string

// Error реализует интерфейс error
func (v ValidationErrors) Error() string {
	return ErrValidation.Error()
}

// Is позволяет проверять ValidationErrors через errors.Is(err, ErrValidation)
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
