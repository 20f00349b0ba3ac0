package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
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

// fakeBookingRepo хранит записи в памяти с ключом master|date|time
type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	nextID   int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *fakeBookingRepo) key(masterCode string, date time.Time, slot types.TimeString) string {
	return fmt.Sprintf("%s|%s|%s", masterCode, date.Format(domain.DateFormat), slot)
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	key := r.key(booking.MasterCode, booking.Date, booking.Time)
	if _, exists := r.bookings[key]; exists {
		return nil, bookingRepo.ErrSlotTaken
	}
	r.nextID++
	booking.ID = r.nextID
	booking.CreatedAt = time.Now()
	r.bookings[key] = booking
	return booking, nil
}

func (r *fakeBookingRepo) ExistsAt(_ context.Context, masterCode string, date time.Time, slot types.TimeString) (bool, error) {
	_, exists := r.bookings[r.key(masterCode, date, slot)]
	return exists, nil
}

type fakeTokenService struct {
	issued int
}

func (s *fakeTokenService) Generate(_ context.Context, phone, clientName, masterCode string, bookingID int64) (*domain.ReviewToken, error) {
	s.issued++
	return &domain.ReviewToken{
		Token:      fmt.Sprintf("token%d", bookingID),
		Phone:      phone,
		ClientName: clientName,
		MasterCode: masterCode,
		BookingID:  bookingID,
	}, nil
}

type fakeScheduleProvider struct {
	schedules map[string]domain.MasterSchedule
}

func (p *fakeScheduleProvider) ScheduleFor(masterCode string) domain.MasterSchedule {
	if schedule, ok := p.schedules[masterCode]; ok {
		return schedule
	}
	return domain.DefaultSchedule()
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUseCase(repo *fakeBookingRepo, tokens *fakeTokenService) *UseCase {
	schedules := &fakeScheduleProvider{schedules: map[string]domain.MasterSchedule{
		domain.MasterAlexander: {StartHour: 10, EndHour: 20, Break: &domain.BreakWindow{Start: 14.0, End: 15.0}},
		domain.MasterMikhail:   {StartHour: 11, EndHour: 19},
	}}

	uc := NewUseCase(repo, tokens, schedules, fakeTxManager{}, fakeLogger{}, "http://localhost:8080")
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientName:  "Иван",
		Phone:       "+79991234567",
		MasterCode:  domain.MasterMikhail,
		ServiceCode: "male_haircut",
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:        types.TimeString("14:30"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := newFakeBookingRepo()
	tokens := &fakeTokenService{}
	uc := newTestUseCase(repo, tokens)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "+79991234567", resp.Phone)
	assert.Equal(t, "Михаил Козлов", resp.MasterName)
	assert.Equal(t, "http://localhost:8080/reviews/add/token1/", resp.ReviewURL)
	assert.Equal(t, 1, tokens.issued)
}

func TestExecute_NormalizesPhone(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(repo, &fakeTokenService{})

	req := validRequest()
	req.Phone = "8 (999) 123-45-67"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "+79991234567", resp.Phone)
}

func TestExecute_DoubleBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newTestUseCase(repo, &fakeTokenService{})

	// Первая запись на 14:30 проходит
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Вторая запись на тот же слот отклоняется
	second := validRequest()
	second.ClientName = "Петр"
	second.Phone = "+79995554433"
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Соседний слот свободен
	third := validRequest()
	third.Time = types.TimeString("15:00")
	_, err = uc.Execute(context.Background(), third)
	assert.NoError(t, err)
}

func TestExecute_ValidationAccumulatesErrors(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), &fakeTokenService{})

	_, err := uc.Execute(context.Background(), &Request{
		ClientName:  "",
		Phone:       "12345",
		MasterCode:  "unknown",
		ServiceCode: "unknown",
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:        types.TimeString("14:30"),
	})

	require.ErrorIs(t, err, ErrValidation)

	var validationErrs ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs, "clientName")
	assert.Contains(t, validationErrs, "phone")
	assert.Contains(t, validationErrs, "masterCode")
	assert.Contains(t, validationErrs, "serviceCode")
}

func TestExecute_RejectsPastDate(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), &fakeTokenService{})

	req := validRequest()
	req.Date = time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)

	var validationErrs ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs, "date")
}

func TestExecute_RejectsBreakSlot(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), &fakeTokenService{})

	req := validRequest()
	req.MasterCode = domain.MasterAlexander
	req.Time = types.TimeString("14:30")

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)

	var validationErrs ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs, "time")
}

func TestExecute_RejectsOffGridSlot(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), &fakeTokenService{})

	req := validRequest()
	req.Time = types.TimeString("14:15")

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
}

func TestExecute_RejectsOutsideSchedule(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), &fakeTokenService{})

	// Михаил работает с 11:00
	req := validRequest()
	req.Time = types.TimeString("10:00")

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
}

func TestExecute_RejectsPastTimeToday(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), &fakeTokenService{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)}

	req := validRequest()
	req.Time = types.TimeString("14:30")

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
}
