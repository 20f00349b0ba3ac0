package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeFormat формат времени слота (HH:MM)
const timeFormat = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString время суток в формате "HH:MM"
// Используется для слотов бронирования: сравнения и арифметика выполняются
// без привязки к дате и часовому поясу
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return "", ErrInvalidTimeString
	}
	return TimeString(t.Format(timeFormat)), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return ErrInvalidTimeString
	}
	return nil
}

// parse возвращает часы и минуты
func (t TimeString) parse() (int, int, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0, 0, ErrInvalidTimeString
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// Minutes возвращает время как количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	h, m, err := t.parse()
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// FractionalHours возвращает время как дробное количество часов (14:30 -> 14.5)
// Используется для сравнения с интервалом перерыва мастера
func (t TimeString) FractionalHours() (float64, error) {
	h, m, err := t.parse()
	if err != nil {
		return 0, err
	}
	return float64(h) + float64(m)/60, nil
}

// AddMinutes возвращает новое время, сдвинутое на указанное количество минут
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return "", ErrInvalidTimeString
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeFormat)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value реализует driver.Valuer для сохранения в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает как строковые колонки, так и колонки типа TIME
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewTimeStringFromString(trimSeconds(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

// trimSeconds отрезает секунды у значений вида "14:30:00" из колонок TIME
func trimSeconds(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
