package domain

// Параметры календаря
const (
	DaysInWeek        = 7
	CalendarGridWeeks = 6
	CalendarGridCells = DaysInWeek * CalendarGridWeeks // 42 ячейки
)

// Параметры рейтингов
const (
	AreaLeaderboardSize = 10 // Топ агентов в рейтинге района
	UsernamePrefix      = "agent"
	UsernameIDLength    = 8
)

// Ограничения временных слотов показов
const (
	DefaultMaxAttendees = 1
	MinMaxAttendees     = 1
	MaxAttendeesLimit   = 500
)

// Статусы подписки агента
const (
	SubscriptionStatusTrial    = "trial"
	SubscriptionStatusActive   = "active"
	SubscriptionStatusInactive = "inactive"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
