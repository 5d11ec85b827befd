package domain

import (
	"time"

	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// TimeSlot временное окно показа объекта недвижимости
// Принадлежит ровно одному объекту; создается, редактируется и удаляется агентом
type TimeSlot struct {
	ID               string
	PropertyID       string
	AgentID          string
	Date             types.Date
	StartTime        types.TimeString
	EndTime          types.TimeString
	IsBooked         bool
	MaxAttendees     int
	CurrentAttendees int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFull returns true if no attendee spots are left
func (s *TimeSlot) IsFull() bool {
	return s.CurrentAttendees >= s.MaxAttendees
}

// IsAvailable returns true if the slot can accept another attendee
func (s *TimeSlot) IsAvailable() bool {
	return !s.IsBooked && !s.IsFull()
}

// RemainingSpots returns the number of free attendee spots
func (s *TimeSlot) RemainingSpots() int {
	remaining := s.MaxAttendees - s.CurrentAttendees
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DurationMinutes returns the length of the slot in minutes
func (s *TimeSlot) DurationMinutes() int {
	return s.StartTime.MinutesUntil(s.EndTime)
}

// IsOwnedBy returns true if the slot was created by the given agent
func (s *TimeSlot) IsOwnedBy(agentID string) bool {
	return s.AgentID == agentID
}

// Overlaps проверяет, пересекаются ли два слота одного дня
// Слоты, которые только соприкасаются (10:00-11:00 и 11:00-12:00), не пересекаются
func (s *TimeSlot) Overlaps(other *TimeSlot) bool {
	if s.Date != other.Date {
		return false
	}
	return s.StartTime.IsBefore(other.EndTime) && s.EndTime.IsAfter(other.StartTime)
}

// RegisterAttendee занимает одно место и помечает слот забронированным, когда мест не осталось
func (s *TimeSlot) RegisterAttendee() {
	s.CurrentAttendees++
	s.IsBooked = s.IsFull()
}

// TimeSlotsFilter фильтр для выборки слотов объекта
type TimeSlotsFilter struct {
	PropertyID    string      // Обязательный параметр
	StartDate     *types.Date // Начало периода включительно (опционально)
	EndDate       *types.Date // Конец периода включительно (опционально)
	OnlyAvailable bool        // Только незабронированные слоты со свободными местами
}

// IsSingleDay returns true if the filter selects exactly one date
func (f *TimeSlotsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && *f.StartDate == *f.EndDate
}
