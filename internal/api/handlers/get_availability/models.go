package get_availability

import (
	"github.com/dmkaz/RSC-BookingService/internal/domain"
	getAvailability "github.com/dmkaz/RSC-BookingService/internal/usecase/get_availability"
)

// SlotResponse статус одного слота
type SlotResponse struct {
	Time   string `json:"time"`
	Status string `json:"status"` // available | reserved | holiday
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Time:   s.Time.String(),
			Status: string(s.Status),
		}
	}
	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
