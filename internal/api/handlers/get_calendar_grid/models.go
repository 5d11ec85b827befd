package get_calendar_grid

import (
	"time"

	"github.com/m04kA/SMC-RealtyService/internal/service/timeslots/models"
	getCalendarGrid "github.com/m04kA/SMC-RealtyService/internal/usecase/get_calendar_grid"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	PropertyID string    `json:"propertyId"`
	Month      string    `json:"month"` // "2024-04"
	Days       []DayCell `json:"days"`
}

// DayCell ячейка календаря
type DayCell struct {
	Date      string                    `json:"date"`
	Day       int                       `json:"day"`
	IsPadding bool                      `json:"isPadding"`
	Slots     []models.TimeSlotResponse `json:"slots"`
}

// ToUseCaseRequest создает запрос use case, пустая дата означает текущий месяц
func ToUseCaseRequest(propertyID, dateStr string, now time.Time) (*getCalendarGrid.Request, error) {
	date := types.NewDate(now)
	if dateStr != "" {
		parsed, err := types.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &getCalendarGrid.Request{
		PropertyID: propertyID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarGrid.Response) *CalendarResponse {
	days := make([]DayCell, len(resp.Days))
	for i, cell := range resp.Days {
		days[i] = DayCell{
			Date:      cell.Date.String(),
			Day:       cell.Date.Day,
			IsPadding: cell.IsPadding,
			Slots:     models.FromDomainTimeSlotValues(cell.Slots),
		}
	}

	return &CalendarResponse{
		PropertyID: resp.PropertyID,
		Month:      resp.Month.Time().Format("2006-01"),
		Days:       days,
	}
}
