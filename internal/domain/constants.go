package domain

// Коды мастеров
// Используются как ключи в графиках работы, записях и токенах отзывов
const (
	MasterAlexander = "alexander"
	MasterMikhail   = "mikhail"
	MasterDmitry    = "dmitry"

	// AdminCode код учетной записи администратора (не мастер)
	AdminCode = "admin"
)

// MasterNames отображаемые имена мастеров по коду
var MasterNames = map[string]string{
	MasterAlexander: "Александр Петров",
	MasterMikhail:   "Михаил Козлов",
	MasterDmitry:    "Дмитрий Соколов",
}

// ServiceNames отображаемые названия услуг по коду
var ServiceNames = map[string]string{
	"male_haircut":    "Мужская стрижка",
	"machine_haircut": "Стрижка машинкой",
	"model_haircut":   "Модельная стрижка",
	"styling":         "Укладка и стайлинг",
	"beard_trim":      "Стрижка бороды",
	"royal_shave":     "Королевское бритье",
	"beard_complex":   "Комплекс \"Борода+\"",
	"gray_camouflage": "Камуфляж седины",
}

// IsKnownMaster возвращает true для известного кода мастера
func IsKnownMaster(code string) bool {
	_, ok := MasterNames[code]
	return ok
}

// IsKnownService возвращает true для известного кода услуги
func IsKnownService(code string) bool {
	_, ok := ServiceNames[code]
	return ok
}

// Параметры слотов
const (
	// SlotStepMinutes шаг сетки слотов
	SlotStepMinutes = 30

	// DefaultScheduleStartHour, DefaultScheduleEndHour график по умолчанию
	// для мастеров без настроенного расписания
	DefaultScheduleStartHour = 10
	DefaultScheduleEndHour   = 18
)

// Параметры токенов отзывов
const (
	// DefaultTokenLifetimeHours срок действия ссылки на отзыв (7 дней)
	DefaultTokenLifetimeHours = 168

	// TokenHexLength длина токена в hex-символах (80 бит энтропии)
	TokenHexLength = 20
)

// Границы оценок
const (
	MinStars = 1
	MaxStars = 5
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения дашборда мастера
const (
	// PastBookingsLimit максимальное количество прошедших записей в кабинете
	PastBookingsLimit = 50
)
