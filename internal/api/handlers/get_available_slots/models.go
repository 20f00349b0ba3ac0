package get_available_slots

import (
	getSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	MasterCode     string   `json:"masterCode"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		MasterCode:     resp.MasterCode,
		Date:           resp.Date,
		AvailableSlots: resp.AvailableSlots,
		BookedSlots:    resp.BookedSlots,
	}
}
