package models

import (
	"time"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
)

// Request модели

// CreateTimeSlotRequest запрос на создание слота показа
type CreateTimeSlotRequest struct {
	AgentID      string `json:"-"`         // Из заголовка X-User-ID
	PropertyID   string `json:"-"`         // Из пути запроса
	Date         string `json:"date"`      // "2024-04-10"
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "11:00"
	MaxAttendees *int   `json:"maxAttendees,omitempty"`
}

// UpdateTimeSlotRequest запрос на частичное обновление слота
// Незаданные поля не изменяются
type UpdateTimeSlotRequest struct {
	AgentID      string  `json:"-"`
	Date         *string `json:"date,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	MaxAttendees *int    `json:"maxAttendees,omitempty"`
}

// IsEmpty returns true if the request changes nothing
func (r *UpdateTimeSlotRequest) IsEmpty() bool {
	return r.Date == nil && r.StartTime == nil && r.EndTime == nil && r.MaxAttendees == nil
}

// Response модели

// TimeSlotResponse ответ с данными слота показа
type TimeSlotResponse struct {
	ID               string    `json:"id"`
	PropertyID       string    `json:"propertyId"`
	AgentID          string    `json:"agentId"`
	Date             string    `json:"date"`      // "2024-04-10"
	StartTime        string    `json:"startTime"` // "10:00"
	EndTime          string    `json:"endTime"`   // "11:00"
	IsBooked         bool      `json:"isBooked"`
	MaxAttendees     int       `json:"maxAttendees"`
	CurrentAttendees int       `json:"currentAttendees"`
	RemainingSpots   int       `json:"remainingSpots"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TimeSlotListResponse ответ со списком слотов
type TimeSlotListResponse struct {
	TimeSlots []TimeSlotResponse `json:"timeSlots"`
}

// Методы конвертации

// FromDomainTimeSlot конвертирует domain модель в DTO
func FromDomainTimeSlot(s *domain.TimeSlot) *TimeSlotResponse {
	if s == nil {
		return nil
	}

	return &TimeSlotResponse{
		ID:               s.ID,
		PropertyID:       s.PropertyID,
		AgentID:          s.AgentID,
		Date:             s.Date.String(),
		StartTime:        s.StartTime.String(),
		EndTime:          s.EndTime.String(),
		IsBooked:         s.IsBooked,
		MaxAttendees:     s.MaxAttendees,
		CurrentAttendees: s.CurrentAttendees,
		RemainingSpots:   s.RemainingSpots(),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// FromDomainTimeSlotList конвертирует список domain моделей в DTO
func FromDomainTimeSlotList(slots []*domain.TimeSlot) *TimeSlotListResponse {
	resp := &TimeSlotListResponse{
		TimeSlots: make([]TimeSlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainTimeSlot(slot); slotResp != nil {
			resp.TimeSlots = append(resp.TimeSlots, *slotResp)
		}
	}

	return resp
}

// FromDomainTimeSlotValues конвертирует слоты ячейки календаря в DTO
func FromDomainTimeSlotValues(slots []domain.TimeSlot) []TimeSlotResponse {
	result := make([]TimeSlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, *FromDomainTimeSlot(&slots[i]))
	}
	return result
}
