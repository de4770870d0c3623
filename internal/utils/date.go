package utils

import (
	"fmt"
	"time"
)

// StartOfDay возвращает полночь той же даты в той же таймзоне
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается,
// пробует дату со временем без таймзоны и просто дату, подставляя loc
func ParseDate(str string, loc *time.Location) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, loc)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, loc)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}
