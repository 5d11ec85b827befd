package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout формат даты YYYY-MM-DD
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается при некорректном формате даты
var ErrInvalidDate = errors.New("invalid date format")

// Date календарная дата без времени и часового пояса
// Две даты равны тогда и только тогда, когда совпадают год, месяц и день
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate берет календарную дату из t в его собственном часовом поясе
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateOf создает нормализованную дату (31 апреля превращается в 1 мая)
func DateOf(year int, month time.Month, day int) Date {
	return NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDate(t), nil
}

// MustDate как ParseDate, но паникует при ошибке
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero возвращает true для незаполненной даты
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time возвращает полночь этой даты в UTC
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}

// Weekday возвращает день недели (воскресенье = 0)
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before возвращает true, если d строго раньше other
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After возвращает true, если d строго позже other
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// FirstOfMonth возвращает первый день месяца
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth возвращает последний день месяца
func (d Date) LastOfMonth() Date {
	return NewDate(time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC))
}

// DaysInMonth возвращает количество дней в месяце даты
func (d Date) DaysInMonth() int {
	return d.LastOfMonth().Day
}

// Scan реализует sql.Scanner для колонок типа DATE
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// MarshalJSON сериализует дату строкой "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON разбирает дату из строки "YYYY-MM-DD"
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
