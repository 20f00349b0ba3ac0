package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName  string `json:"clientName"`
	Phone       string `json:"phone"`
	MasterCode  string `json:"masterCode"`
	ServiceCode string `json:"serviceCode"`
	Date        string `json:"date"` // "2025-10-15"
	Time        string `json:"time"` // "14:30"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	Phone       string `json:"phone"`
	MasterCode  string `json:"masterCode"`
	MasterName  string `json:"masterName"`
	ServiceCode string `json:"serviceCode"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ReviewURL   string `json:"reviewUrl"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientName:  r.ClientName,
		Phone:       r.Phone,
		MasterCode:  r.MasterCode,
		ServiceCode: r.ServiceCode,
		Date:        bookingDate,
		Time:        slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Success: true,
		Message: fmt.Sprintf("Вы записаны к мастеру %s на %s в %s",
			resp.MasterName, resp.Date.Format(domain.DateFormat), resp.Time),
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		Phone:       resp.Phone,
		MasterCode:  resp.MasterCode,
		MasterName:  resp.MasterName,
		ServiceCode: resp.ServiceCode,
		ServiceName: resp.ServiceName,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		ReviewURL:   resp.ReviewURL,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
