package masters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	accountRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/masteraccount"
	"github.com/m04kA/SMC-SalonService/internal/service/masters/models"
)

// Service сервис личных кабинетов мастеров
type Service struct {
	accountRepo  AccountRepository
	bookingRepo  BookingRepository
	reviewRepo   ReviewRepository
	tokens       TokenIssuer
	txManager    TransactionManager
	logger       Logger
	timeProvider TimeProvider
}

// NewService создает новый экземпляр сервиса кабинетов мастеров
func NewService(
	accountRepo AccountRepository,
	bookingRepo BookingRepository,
	reviewRepo ReviewRepository,
	tokens TokenIssuer,
	txManager TransactionManager,
	logger Logger,
	timeProvider TimeProvider,
) *Service {
	return &Service{
		accountRepo:  accountRepo,
		bookingRepo:  bookingRepo,
		reviewRepo:   reviewRepo,
		tokens:       tokens,
		txManager:    txManager,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Login проверяет логин и пароль и выпускает JWT-токен сессии
// Для несуществующего логина и неверного пароля возвращается одна и та же
// ошибка, чтобы не раскрывать существование учетной записи
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	account, err := s.accountRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("Login: unknown username=%s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !account.IsActive {
		s.logger.Warn("Login: account username=%s is inactive", req.Username)
		return nil, ErrAccountInactive
	}

	if err := auth.ComparePassword(account.PasswordHash, req.Password); err != nil {
		s.logger.Warn("Login: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Username, account.MasterCode, account.IsAdmin(), s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Login: failed to issue token for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: username=%s logged in, master=%s", account.Username, account.MasterCode)
	return &models.LoginResponse{
		Token:      token,
		Username:   account.Username,
		MasterCode: account.MasterCode,
		MasterName: domain.MasterNames[account.MasterCode],
		IsAdmin:    account.IsAdmin(),
	}, nil
}

// Dashboard собирает личный кабинет мастера: предстоящие записи,
// сгруппированные по дням, последние прошедшие записи и отзывы
// Мастер видит только свой кабинет, администратор - любой
func (s *Service) Dashboard(ctx context.Context, claims *auth.Claims, masterCode string) (*models.DashboardResponse, error) {
	if !claims.IsAdmin && claims.MasterCode != masterCode {
		s.logger.Warn("Dashboard: user=%s denied access to master=%s", claims.Username, masterCode)
		return nil, ErrAccessDenied
	}

	if !domain.IsKnownMaster(masterCode) {
		s.logger.Warn("Dashboard: unknown master=%s", masterCode)
		return nil, ErrMasterNotFound
	}

	today := s.today()

	var (
		upcoming []*domain.Booking
		past     []*domain.Booking
		reviews  []*domain.Review
	)

	// Кабинет собирается из трех выборок в одной read-only транзакции,
	// чтобы записи и отзывы читались из согласованного снимка
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		upcoming, err = s.bookingRepo.GetWithFilter(txCtx, domain.MasterBookingsFilter{
			MasterCode: masterCode,
			FromDate:   &today,
		})
		if err != nil {
			s.logger.Error("Dashboard: failed to fetch upcoming bookings for master=%s: %v", masterCode, err)
			return fmt.Errorf("%w: Dashboard - fetch upcoming: %v", ErrInternal, err)
		}

		past, err = s.bookingRepo.GetWithFilter(txCtx, domain.MasterBookingsFilter{
			MasterCode:  masterCode,
			ToDate:      &today,
			Limit:       domain.PastBookingsLimit,
			NewestFirst: true,
		})
		if err != nil {
			s.logger.Error("Dashboard: failed to fetch past bookings for master=%s: %v", masterCode, err)
			return fmt.Errorf("%w: Dashboard - fetch past: %v", ErrInternal, err)
		}

		reviews, err = s.reviewRepo.ListByMaster(txCtx, masterCode)
		if err != nil {
			s.logger.Error("Dashboard: failed to fetch reviews for master=%s: %v", masterCode, err)
			return fmt.Errorf("%w: Dashboard - fetch reviews: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dashboard: master=%s, upcoming=%d, past=%d, reviews=%d",
		masterCode, len(upcoming), len(past), len(reviews))

	return &models.DashboardResponse{
		MasterCode: masterCode,
		MasterName: domain.MasterNames[masterCode],
		Upcoming:   models.GroupBookingsByDate(upcoming),
		Past:       models.FromDomainBookingList(past),
		Reviews:    models.FromDomainReviewList(reviews),
	}, nil
}

// AdminOverview собирает сводку по всем мастерам для администратора
func (s *Service) AdminOverview(ctx context.Context, claims *auth.Claims) (*models.AdminOverviewResponse, error) {
	if !claims.IsAdmin {
		s.logger.Warn("AdminOverview: user=%s is not admin", claims.Username)
		return nil, ErrAccessDenied
	}

	today := s.today()

	ratings, err := s.reviewRepo.Ratings(ctx)
	if err != nil {
		s.logger.Error("AdminOverview: failed to fetch ratings: %v", err)
		return nil, fmt.Errorf("%w: AdminOverview - fetch ratings: %v", ErrInternal, err)
	}

	ratingsByMaster := make(map[string]*domain.MasterRating, len(ratings))
	for _, rating := range ratings {
		ratingsByMaster[rating.MasterCode] = rating
	}

	overview := make([]*models.MasterOverviewResponse, 0, len(domain.MasterNames))
	var totals models.OverviewTotalsResponse
	for _, code := range []string{domain.MasterAlexander, domain.MasterMikhail, domain.MasterDmitry} {
		upcoming, past, total, err := s.bookingRepo.CountByMaster(ctx, code, today)
		if err != nil {
			s.logger.Error("AdminOverview: failed to count bookings for master=%s: %v", code, err)
			return nil, fmt.Errorf("%w: AdminOverview - count bookings: %v", ErrInternal, err)
		}

		master := &models.MasterOverviewResponse{
			MasterCode:       code,
			MasterName:       domain.MasterNames[code],
			UpcomingBookings: upcoming,
			PastBookings:     past,
			TotalBookings:    total,
		}
		if rating, ok := ratingsByMaster[code]; ok {
			master.AverageStars = rating.AverageStars
			master.ReviewsCount = rating.ReviewsCount
		}

		totals.UpcomingBookings += upcoming
		totals.PastBookings += past
		totals.TotalBookings += total

		overview = append(overview, master)
	}

	s.logger.Info("AdminOverview: collected overview for %d masters", len(overview))
	return &models.AdminOverviewResponse{Masters: overview, Totals: totals}, nil
}

// today возвращает текущую дату без времени
func (s *Service) today() time.Time {
	now := s.timeProvider.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
