package get_available_slots

import (
	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
	getAvailableSlots "github.com/m04kA/SMC-RealtyService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	PropertyID string                    `json:"propertyId"`
	Date       string                    `json:"date"` // "2024-04-10"
	Slots      []models.TimeSlotResponse `json:"slots"`
}

// ToUseCaseRequest создает запрос use case с парсингом даты
func ToUseCaseRequest(propertyID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		PropertyID: propertyID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		PropertyID: resp.PropertyID,
		Date:       resp.Date.String(),
		Slots:      models.FromDomainTimeSlotList(resp.Slots).TimeSlots,
	}
}
