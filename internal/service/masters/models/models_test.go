package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func booking(id int64, date string, slot string) *domain.Booking {
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

func TestGroupBookingsByDate(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, "2024-06-01", "10:00"),
		booking(2, "2024-06-01", "14:30"),
		booking(3, "2024-06-02", "11:00"),
	}

	days := GroupBookingsByDate(bookings)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-06-01", days[0].Date)
	assert.Len(t, days[0].Bookings, 2)
	assert.Equal(t, "2024-06-02", days[1].Date)
	assert.Len(t, days[1].Bookings, 1)

	// Порядок внутри дня сохраняется
	assert.Equal(t, "10:00", days[0].Bookings[0].Time)
	assert.Equal(t, "14:30", days[0].Bookings[1].Time)
}

func TestGroupBookingsByDate_Empty(t *testing.T) {
	days := GroupBookingsByDate(nil)
	assert.Empty(t, days)
	assert.NotNil(t, days)
}

func TestFromDomainBooking(t *testing.T) {
	resp := FromDomainBooking(booking(7, "2024-06-01", "14:30"))

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2024-06-01", resp.Date)
	assert.Equal(t, "14:30", resp.Time)
	assert.Equal(t, "Мужская стрижка", resp.ServiceName)
}
