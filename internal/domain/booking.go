package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Booking представляет запись клиента к мастеру
// Запись неизменяема после создания: отмена и редактирование не поддерживаются
type Booking struct {
	ID          int64
	ClientName  string
	Phone       string // Нормализованный номер (+7XXXXXXXXXX)
	MasterCode  string
	ServiceCode string
	Date        time.Time
	Time        types.TimeString
	CreatedAt   time.Time
}

// IsUpcoming возвращает true, если запись назначена на сегодня или позже
func (b *Booking) IsUpcoming(today time.Time) bool {
	return !dateOnly(b.Date).Before(dateOnly(today))
}

// MasterBookingsFilter фильтр для получения записей мастера
type MasterBookingsFilter struct {
	MasterCode  string     // Обязательный параметр
	Date        *time.Time // Записи на конкретную дату (опционально)
	FromDate    *time.Time // Записи начиная с даты включительно (опционально)
	ToDate      *time.Time // Записи строго до даты (опционально)
	Limit       uint64     // Максимальное количество записей (0 = без ограничения)
	NewestFirst bool       // Сортировка от новых к старым (для истории)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
