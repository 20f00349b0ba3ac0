package domain

import "time"

// BreakWindow интервал перерыва мастера в дробных часах
// Слот попадает в перерыв, если его время начала лежит в [Start, End)
type BreakWindow struct {
	Start float64 // Начало перерыва (14.0 = 14:00, 13.5 = 13:30)
	End   float64 // Конец перерыва (не включается)
}

// Contains возвращает true, если время (в дробных часах) попадает в перерыв
func (b *BreakWindow) Contains(fractionalHours float64) bool {
	return fractionalHours >= b.Start && fractionalHours < b.End
}

// MasterSchedule рабочий график мастера на день
// Это конфигурационные данные, а не сущность БД: график задаётся в config.toml
// по коду мастера
type MasterSchedule struct {
	StartHour int          // Час начала работы
	EndHour   int          // Час окончания работы (не включается в слоты)
	Break     *BreakWindow // Перерыв (опционально)
}

// DefaultSchedule возвращает график по умолчанию для неизвестных кодов мастеров
func DefaultSchedule() MasterSchedule {
	return MasterSchedule{
		StartHour: DefaultScheduleStartHour,
		EndHour:   DefaultScheduleEndHour,
	}
}

// MasterAccount учетная запись мастера для входа в личный кабинет
type MasterAccount struct {
	ID           int64
	Username     string
	PasswordHash string
	MasterCode   string
	IsActive     bool
	CreatedAt    time.Time
}

// IsAdmin возвращает true для учетной записи администратора
func (a *MasterAccount) IsAdmin() bool {
	return a.MasterCode == AdminCode
}
