package masters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	accountRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/masteraccount"
	"github.com/m04kA/SMC-SalonService/internal/service/masters/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type fakeAccountRepo struct {
	accounts map[string]*domain.MasterAccount
}

func (r *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*domain.MasterAccount, error) {
	account, ok := r.accounts[username]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return account, nil
}

type fakeBookingRepo struct {
	upcoming []*domain.Booking
	past     []*domain.Booking
	counts   map[string][3]int64
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.MasterBookingsFilter) ([]*domain.Booking, error) {
	if filter.FromDate != nil {
		return r.upcoming, nil
	}
	return r.past, nil
}

func (r *fakeBookingRepo) CountByMaster(_ context.Context, masterCode string, _ time.Time) (int64, int64, int64, error) {
	counts := r.counts[masterCode]
	return counts[0], counts[1], counts[2], nil
}

type fakeReviewRepo struct {
	reviews []*domain.Review
	ratings []*domain.MasterRating
}

func (r *fakeReviewRepo) ListByMaster(context.Context, string) ([]*domain.Review, error) {
	return r.reviews, nil
}

func (r *fakeReviewRepo) Ratings(context.Context) ([]*domain.MasterRating, error) {
	return r.ratings, nil
}

type fakeTxManager struct {
	readOnlyCalls int
}

func (m *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.readOnlyCalls++
	return fn(ctx)
}

func testBooking(id int64, date string, slot string) *domain.Booking {
	parsed, _ := time.Parse(domain.DateFormat, date)
	return &domain.Booking{
		ID:          id,
		ClientName:  "Иван",
		Phone:       "+79991234567",
		MasterCode:  domain.MasterAlexander,
		ServiceCode: "male_haircut",
		Date:        parsed,
		Time:        types.TimeString(slot),
	}
}

func newTestService(accounts *fakeAccountRepo, bookings *fakeBookingRepo, reviews *fakeReviewRepo) (*Service, *fakeTxManager) {
	jwtManager := auth.NewJWTManager("test-secret", 24*time.Hour)
	provider := &fakeTimeProvider{now: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)}
	txManager := &fakeTxManager{}
	return NewService(accounts, bookings, reviews, jwtManager, txManager, fakeLogger{}, provider), txManager
}

func accountFixture(t *testing.T, username, masterCode, password string, active bool) *domain.MasterAccount {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &domain.MasterAccount{
		Username:     username,
		PasswordHash: hash,
		MasterCode:   masterCode,
		IsActive:     active,
	}
}

func TestLogin_Success(t *testing.T) {
	accounts := &fakeAccountRepo{accounts: map[string]*domain.MasterAccount{
		"alexander": accountFixture(t, "alexander", domain.MasterAlexander, "alexander123", true),
	}}
	svc, _ := newTestService(accounts, &fakeBookingRepo{}, &fakeReviewRepo{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "alexander",
		Password: "alexander123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, domain.MasterAlexander, resp.MasterCode)
	assert.Equal(t, "Александр Петров", resp.MasterName)
	assert.False(t, resp.IsAdmin)
}

func TestLogin_AdminAccount(t *testing.T) {
	accounts := &fakeAccountRepo{accounts: map[string]*domain.MasterAccount{
		"admin": accountFixture(t, "admin", domain.AdminCode, "admin123", true),
	}}
	svc, _ := newTestService(accounts, &fakeBookingRepo{}, &fakeReviewRepo{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)
}

func TestLogin_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	accounts := &fakeAccountRepo{accounts: map[string]*domain.MasterAccount{
		"alexander": accountFixture(t, "alexander", domain.MasterAlexander, "alexander123", true),
	}}
	svc, _ := newTestService(accounts, &fakeBookingRepo{}, &fakeReviewRepo{})

	_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{
		Username: "nobody",
		Password: "alexander123",
	})
	_, errWrongPassword := svc.Login(context.Background(), &models.LoginRequest{
		Username: "alexander",
		Password: "wrong",
	})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	accounts := &fakeAccountRepo{accounts: map[string]*domain.MasterAccount{
		"alexander": accountFixture(t, "alexander", domain.MasterAlexander, "alexander123", false),
	}}
	svc, _ := newTestService(accounts, &fakeBookingRepo{}, &fakeReviewRepo{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "alexander",
		Password: "alexander123",
	})
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestDashboard_OwnCabinet(t *testing.T) {
	bookings := &fakeBookingRepo{
		upcoming: []*domain.Booking{
			testBooking(1, "2024-06-11", "10:00"),
			testBooking(2, "2024-06-11", "14:30"),
			testBooking(3, "2024-06-12", "11:00"),
		},
		past: []*domain.Booking{
			testBooking(4, "2024-06-09", "15:00"),
		},
	}
	reviews := &fakeReviewRepo{reviews: []*domain.Review{
		{ID: 1, ClientName: "Иван", Stars: 5, Text: "Отлично", CreatedAt: time.Date(2024, 6, 9, 18, 0, 0, 0, time.UTC)},
	}}
	svc, txManager := newTestService(&fakeAccountRepo{}, bookings, reviews)

	claims := &auth.Claims{Username: "alexander", MasterCode: domain.MasterAlexander}

	resp, err := svc.Dashboard(context.Background(), claims, domain.MasterAlexander)
	require.NoError(t, err)

	assert.Equal(t, "Александр Петров", resp.MasterName)
	// Предстоящие записи сгруппированы по дням
	require.Len(t, resp.Upcoming, 2)
	assert.Equal(t, "2024-06-11", resp.Upcoming[0].Date)
	assert.Len(t, resp.Upcoming[0].Bookings, 2)
	assert.Len(t, resp.Past, 1)
	assert.Len(t, resp.Reviews, 1)

	// Выборки кабинета выполняются в одной read-only транзакции
	assert.Equal(t, 1, txManager.readOnlyCalls)
}

func TestDashboard_ForeignCabinetDenied(t *testing.T) {
	svc, _ := newTestService(&fakeAccountRepo{}, &fakeBookingRepo{}, &fakeReviewRepo{})

	claims := &auth.Claims{Username: "mikhail", MasterCode: domain.MasterMikhail}

	_, err := svc.Dashboard(context.Background(), claims, domain.MasterAlexander)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDashboard_AdminSeesAnyCabinet(t *testing.T) {
	svc, _ := newTestService(&fakeAccountRepo{}, &fakeBookingRepo{}, &fakeReviewRepo{})

	claims := &auth.Claims{Username: "admin", MasterCode: domain.AdminCode, IsAdmin: true}

	_, err := svc.Dashboard(context.Background(), claims, domain.MasterDmitry)
	assert.NoError(t, err)
}

func TestDashboard_UnknownMaster(t *testing.T) {
	svc, _ := newTestService(&fakeAccountRepo{}, &fakeBookingRepo{}, &fakeReviewRepo{})

	claims := &auth.Claims{Username: "admin", MasterCode: domain.AdminCode, IsAdmin: true}

	_, err := svc.Dashboard(context.Background(), claims, "unknown")
	assert.ErrorIs(t, err, ErrMasterNotFound)
}

func TestAdminOverview(t *testing.T) {
	bookings := &fakeBookingRepo{counts: map[string][3]int64{
		domain.MasterAlexander: {3, 10, 13},
		domain.MasterMikhail:   {1, 5, 6},
	}}
	reviews := &fakeReviewRepo{ratings: []*domain.MasterRating{
		{MasterCode: domain.MasterAlexander, AverageStars: 4.8, ReviewsCount: 12},
	}}
	svc, _ := newTestService(&fakeAccountRepo{}, bookings, reviews)

	claims := &auth.Claims{Username: "admin", MasterCode: domain.AdminCode, IsAdmin: true}

	resp, err := svc.AdminOverview(context.Background(), claims)
	require.NoError(t, err)

	require.Len(t, resp.Masters, 3)
	assert.Equal(t, domain.MasterAlexander, resp.Masters[0].MasterCode)
	assert.Equal(t, int64(3), resp.Masters[0].UpcomingBookings)
	assert.Equal(t, int64(13), resp.Masters[0].TotalBookings)
	assert.Equal(t, 4.8, resp.Masters[0].AverageStars)
	assert.Equal(t, int64(12), resp.Masters[0].ReviewsCount)

	// У мастера без отзывов рейтинг нулевой
	assert.Equal(t, domain.MasterDmitry, resp.Masters[2].MasterCode)
	assert.Zero(t, resp.Masters[2].AverageStars)
	assert.Zero(t, resp.Masters[2].ReviewsCount)

	// Суммарные показатели по салону
	assert.Equal(t, int64(4), resp.Totals.UpcomingBookings)
	assert.Equal(t, int64(15), resp.Totals.PastBookings)
	assert.Equal(t, int64(19), resp.Totals.TotalBookings)
}

func TestAdminOverview_NonAdminDenied(t *testing.T) {
	svc, _ := newTestService(&fakeAccountRepo{}, &fakeBookingRepo{}, &fakeReviewRepo{})

	claims := &auth.Claims{Username: "alexander", MasterCode: domain.MasterAlexander}

	_, err := svc.AdminOverview(context.Background(), claims)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
