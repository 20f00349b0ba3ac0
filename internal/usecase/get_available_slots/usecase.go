package get_available_slots

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case для получения доступных слотов мастера на дату
type UseCase struct {
	bookingRepo BookingRepository
	schedules   ScheduleProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, schedules ScheduleProvider, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		schedules:   schedules,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
// Для кода мастера без настроенного графика действует график по умолчанию,
// поэтому проверка существования мастера не выполняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%s, date=%s", req.MasterCode, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем занятые слоты на дату
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.MasterBookingsFilter{
		MasterCode: req.MasterCode,
		Date:       &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	booked := make(map[string]struct{}, len(bookings))
	bookedSlots := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		slot := booking.Time.String()
		if _, seen := booked[slot]; seen {
			continue
		}
		booked[slot] = struct{}{}
		bookedSlots = append(bookedSlots, slot)
	}
	sort.Strings(bookedSlots)

	// 3. Строим сетку свободных слотов по графику мастера
	schedule := uc.schedules.ScheduleFor(req.MasterCode)
	available := generateSlots(schedule, booked)

	uc.logger.Info("GetAvailableSlots: master=%s, date=%s, available=%d, booked=%d",
		req.MasterCode, req.Date.Format(domain.DateFormat), len(available), len(bookedSlots))

	return &Response{
		MasterCode:     req.MasterCode,
		Date:           req.Date.Format(domain.DateFormat),
		AvailableSlots: available,
		BookedSlots:    bookedSlots,
	}, nil
}
