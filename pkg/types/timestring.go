package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (без даты и секунд)
// Используется для хранения времени слотов и сериализации в JSON/БД
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

const timeLayout = "15:04"

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString валидирует строку "HH:MM" и создает TimeString
// Допускается также формат "HH:MM:SS" (секунды отбрасываются)
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) > 5 {
		// "10:00:00" -> "10:00"
		if _, err := time.Parse("15:04:05", s); err == nil {
			return TimeString(s[:5]), nil
		}
	}
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// parse возвращает time.Time для внутренних вычислений
func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan реализует sql.Scanner
// Postgres возвращает колонки TIME как time.Time, строку или []byte
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if _, err := t.parse(); err != nil {
		return nil, err
	}
	return string(t), nil
}
