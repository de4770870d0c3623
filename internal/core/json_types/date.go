package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось - пробуем дату со временем, но без таймзоны, считаем её UTC
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, time.UTC)
		if err != nil {
			// Последняя попытка - дата без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, time.UTC)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}

// DateTime - абсолютный момент времени, RFC3339 в JSON,
// с фолбэком на запись без таймзоны
type DateTime struct {
	Date time.Time
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(time.RFC3339))
}

// DateTimeWithoutTimezone - настенное время без привязки к таймзоне,
// используется для старта брони, который интерпретируется в таймзоне гостя
type DateTimeWithoutTimezone struct {
	Date time.Time
}

func (t *DateTimeWithoutTimezone) UnmarshalJSON(data []byte) error {
	str := string(data[1 : len(data)-1])

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = DateTimeWithoutTimezone{Date: parsedDate}
	return nil
}

func (t DateTimeWithoutTimezone) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02T15:04:05"))
}
