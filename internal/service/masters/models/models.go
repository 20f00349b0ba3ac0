package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// LoginRequest запрос на вход мастера
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse результат входа
type LoginResponse struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	MasterCode string `json:"masterCode"`
	MasterName string `json:"masterName,omitempty"`
	IsAdmin    bool   `json:"isAdmin"`
}

// BookingResponse запись клиента в кабинете мастера
type BookingResponse struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	Phone       string `json:"phone"`
	ServiceCode string `json:"serviceCode"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// DayBookingsResponse записи одного дня
type DayBookingsResponse struct {
	Date     string             `json:"date"`
	Bookings []*BookingResponse `json:"bookings"`
}

// ReviewResponse отзыв в кабинете мастера
type ReviewResponse struct {
	ID         int64  `json:"id"`
	ClientName string `json:"clientName"`
	Stars      int    `json:"stars"`
	Text       string `json:"text"`
	CreatedAt  string `json:"createdAt"`
}

// DashboardResponse личный кабинет мастера
type DashboardResponse struct {
	MasterCode string                 `json:"masterCode"`
	MasterName string                 `json:"masterName"`
	Upcoming   []*DayBookingsResponse `json:"upcoming"`
	Past       []*BookingResponse     `json:"past"`
	Reviews    []*ReviewResponse      `json:"reviews"`
}

// MasterOverviewResponse сводка по мастеру для администратора
type MasterOverviewResponse struct {
	MasterCode       string  `json:"masterCode"`
	MasterName       string  `json:"masterName"`
	UpcomingBookings int64   `json:"upcomingBookings"`
	PastBookings     int64   `json:"pastBookings"`
	TotalBookings    int64   `json:"totalBookings"`
	AverageStars     float64 `json:"averageStars"`
	ReviewsCount     int64   `json:"reviewsCount"`
}

// OverviewTotalsResponse суммарные показатели салона
type OverviewTotalsResponse struct {
	UpcomingBookings int64 `json:"upcomingBookings"`
	PastBookings     int64 `json:"pastBookings"`
	TotalBookings    int64 `json:"totalBookings"`
}

// AdminOverviewResponse сводка по всем мастерам
type AdminOverviewResponse struct {
	Masters []*MasterOverviewResponse `json:"masters"`
	Totals  OverviewTotalsResponse    `json:"totals"`
}

// FromDomainBooking конвертирует доменную запись в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          booking.ID,
		ClientName:  booking.ClientName,
		Phone:       booking.Phone,
		ServiceCode: booking.ServiceCode,
		ServiceName: domain.ServiceNames[booking.ServiceCode],
		Date:        booking.Date.Format(domain.DateFormat),
		Time:        booking.Time.String(),
	}
}

// GroupBookingsByDate группирует записи по дате с сохранением порядка
// Ожидает записи, отсортированные по дате и времени
func GroupBookingsByDate(bookings []*domain.Booking) []*DayBookingsResponse {
	days := make([]*DayBookingsResponse, 0)
	var current *DayBookingsResponse

	for _, booking := range bookings {
		date := booking.Date.Format(domain.DateFormat)
		if current == nil || current.Date != date {
			current = &DayBookingsResponse{
				Date:     date,
				Bookings: make([]*BookingResponse, 0, 1),
			}
			days = append(days, current)
		}
		current.Bookings = append(current.Bookings, FromDomainBooking(booking))
	}

	return days
}

// FromDomainBookingList конвертирует список записей в response
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, FromDomainBooking(booking))
	}
	return result
}

// FromDomainReviewList конвертирует отзывы мастера в response
func FromDomainReviewList(reviews []*domain.Review) []*ReviewResponse {
	result := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, &ReviewResponse{
			ID:         review.ID,
			ClientName: review.ClientName,
			Stars:      review.Stars,
			Text:       review.Text,
			CreatedAt:  review.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return result
}
