package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonService/pkg/phone"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	bookingRepo  BookingRepository
	tokenService TokenService
	schedules    ScheduleProvider
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
	reviewBase   string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tokenService TokenService,
	schedules ScheduleProvider,
	txManager TransactionManager,
	logger Logger,
	reviewBaseURL string,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tokenService: tokenService,
		schedules:    schedules,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		reviewBase:   reviewBaseURL,
	}
}

// Execute выполняет use case создания записи
// Проверка занятости и вставка выполняются в сериализуемой транзакции,
// чтобы два клиента не заняли один слот. Уникальный индекс в БД страхует
// от гонки на случай отката уровня изоляции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: master=%s, service=%s, date=%s, time=%s",
		req.MasterCode, req.ServiceCode, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных с накоплением ошибок по полям
	now := uc.timeProvider.Now()
	schedule := uc.schedules.ScheduleFor(req.MasterCode)
	if errs := validateRequest(req, now, schedule); len(errs) > 0 {
		uc.logger.Warn("CreateBooking: validation failed: %v", map[string]string(errs))
		return nil, errs
	}

	// 2. Нормализуем телефон до каноничного вида +7XXXXXXXXXX
	normalizedPhone := phone.Normalize(req.Phone)

	var result *domain.Booking
	var token *domain.ReviewToken

	// 3. Проверяем занятость слота и создаем запись в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.bookingRepo.ExistsAt(txCtx, req.MasterCode, req.Date, req.Time)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot %s %s already taken for master=%s",
				req.Date.Format(domain.DateFormat), req.Time, req.MasterCode)
			return ErrSlotTaken
		}

		booking := &domain.Booking{
			ClientName:  req.ClientName,
			Phone:       normalizedPhone,
			MasterCode:  req.MasterCode,
			ServiceCode: req.ServiceCode,
			Date:        req.Date,
			Time:        req.Time,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected slot %s %s for master=%s",
					req.Date.Format(domain.DateFormat), req.Time, req.MasterCode)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// Токен для отзыва выпускается в той же транзакции:
		// запись без ссылки на отзыв считается незавершенной
		issued, err := uc.tokenService.Generate(txCtx, normalizedPhone, req.ClientName, req.MasterCode, created.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to issue review token for booking=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to issue review token: %v", ErrInternal, err)
		}

		result = created
		token = issued
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		ClientName:  result.ClientName,
		Phone:       result.Phone,
		MasterCode:  result.MasterCode,
		MasterName:  domain.MasterNames[result.MasterCode],
		ServiceCode: result.ServiceCode,
		ServiceName: domain.ServiceNames[result.ServiceCode],
		Date:        result.Date,
		Time:        result.Time,
		CreatedAt:   result.CreatedAt,
		ReviewURL:   fmt.Sprintf("%s/reviews/add/%s/", uc.reviewBase, token.Token),
	}, nil
}
