package get_available_slots

import "time"

// Request модель запроса доступных слотов
type Request struct {
	MasterCode string    // Код мастера
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со слотами на дату
type Response struct {
	MasterCode     string   // Код мастера
	Date           string   // Дата в формате YYYY-MM-DD
	AvailableSlots []string // Свободные слоты "HH:MM" по возрастанию
	BookedSlots    []string // Занятые слоты "HH:MM" по возрастанию
}
