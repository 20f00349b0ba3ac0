package verification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[string][]*domain.Booking
}

func (r *fakeBookingRepo) GetByMaster(_ context.Context, masterCode string) ([]*domain.Booking, error) {
	return r.bookings[masterCode], nil
}

func newTestService(bookings map[string][]*domain.Booking) *Service {
	return NewService(&fakeBookingRepo{bookings: bookings}, fakeLogger{})
}

func booking(clientName, phoneNumber string) *domain.Booking {
	return &domain.Booking{
		ClientName: clientName,
		Phone:      phoneNumber,
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("14:30"),
	}
}

func TestHadBooking_PhoneFormats(t *testing.T) {
	svc := newTestService(map[string][]*domain.Booking{
		domain.MasterAlexander: {booking("Иван Иванов", "+79991234567")},
	})

	tests := []struct {
		name     string
		phone    string
		expected bool
	}{
		{"normalized", "+79991234567", true},
		{"eight prefix formatted", "8 (999) 123-45-67", true},
		{"ten digits", "9991234567", true},
		{"different number", "+79991234568", false},
		{"short number", "1234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmed, err := svc.HadBooking(context.Background(), domain.MasterAlexander, tt.phone, "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, confirmed)
		})
	}
}

func TestHadBooking_NameMatching(t *testing.T) {
	svc := newTestService(map[string][]*domain.Booking{
		domain.MasterMikhail: {booking("Иван Иванов", "+79991234567")},
	})

	tests := []struct {
		name       string
		clientName string
		expected   bool
	}{
		{"exact", "Иван Иванов", true},
		{"short form", "Иван", true},
		{"case insensitive", "иван иванов", true},
		{"empty name skips check", "", true},
		{"different name", "Петр", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmed, err := svc.HadBooking(context.Background(), domain.MasterMikhail, "+79991234567", tt.clientName)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, confirmed)
		})
	}
}

func TestHadBooking_LongerNameInRequest(t *testing.T) {
	// В записи короткое имя, клиент указал полное: совпадение в обе стороны
	svc := newTestService(map[string][]*domain.Booking{
		domain.MasterDmitry: {booking("Иван", "+79991234567")},
	})

	confirmed, err := svc.HadBooking(context.Background(), domain.MasterDmitry, "+79991234567", "Иван Иванов")
	require.NoError(t, err)
	assert.True(t, confirmed)
}

func TestHadBooking_NoBookings(t *testing.T) {
	svc := newTestService(map[string][]*domain.Booking{})

	confirmed, err := svc.HadBooking(context.Background(), domain.MasterAlexander, "+79991234567", "Иван")
	require.NoError(t, err)
	assert.False(t, confirmed)
}
