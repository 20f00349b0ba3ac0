package verification

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/pkg/phone"
)

// Service проверяет, был ли клиент записан к мастеру
// Используется формой отзыва без одноразовой ссылки: отзыв принимается,
// только если телефон (и имя, если указано) совпадают с историей записей
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса проверки клиентов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// HadBooking возвращает true, если у мастера есть запись с совпадающим
// телефоном и именем
// Телефоны сравниваются по последним 10 цифрам. Имена сравниваются
// подстрокой в обе стороны без учета регистра: "Иван" совпадает с
// "Иван Иванов" и наоборот. Пустое имя проверку имени пропускает
func (s *Service) HadBooking(ctx context.Context, masterCode, phoneNumber, clientName string) (bool, error) {
	bookings, err := s.bookingRepo.GetByMaster(ctx, masterCode)
	if err != nil {
		s.logger.Error("HadBooking: repository error for master=%s: %v", masterCode, err)
		return false, fmt.Errorf("%w: HadBooking - repository error: %v", ErrInternal, err)
	}

	for _, booking := range bookings {
		if !phone.Match(booking.Phone, phoneNumber) {
			continue
		}
		if !namesMatch(booking.ClientName, clientName) {
			continue
		}

		s.logger.Info("HadBooking: confirmed booking id=%d for master=%s", booking.ID, masterCode)
		return true, nil
	}

	s.logger.Info("HadBooking: no matching booking for master=%s", masterCode)
	return false, nil
}

// namesMatch сравнивает имена подстрокой в обе стороны без учета регистра
func namesMatch(bookingName, clientName string) bool {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return true
	}

	a := strings.ToLower(strings.TrimSpace(bookingName))
	b := strings.ToLower(clientName)

	return strings.Contains(a, b) || strings.Contains(b, a)
}
