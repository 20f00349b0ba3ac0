package schedules

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Service хранит графики работы мастеров из конфигурации
// Для кода без настроенного графика возвращается график по умолчанию
type Service struct {
	schedules map[string]domain.MasterSchedule
}

// NewService создает новый экземпляр сервиса графиков
func NewService(schedules map[string]domain.MasterSchedule) *Service {
	copied := make(map[string]domain.MasterSchedule, len(schedules))
	for code, schedule := range schedules {
		copied[code] = schedule
	}
	return &Service{schedules: copied}
}

// ScheduleFor возвращает график мастера по коду
func (s *Service) ScheduleFor(masterCode string) domain.MasterSchedule {
	if schedule, ok := s.schedules[masterCode]; ok {
		return schedule
	}
	return domain.DefaultSchedule()
}
