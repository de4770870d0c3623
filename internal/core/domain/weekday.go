package domain

import "time"

type Weekday string

const (
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
	WeekdaySunday    Weekday = "sunday"
)

// WeekdaysInOrder - фиксированный порядок дней недели, используется как единственный
// источник допустимых значений для правил доступности
var WeekdaysInOrder = [7]Weekday{
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
	WeekdaySunday,
}

var weekdayMap = map[time.Weekday]Weekday{
	time.Monday:    WeekdayMonday,
	time.Tuesday:   WeekdayTuesday,
	time.Wednesday: WeekdayWednesday,
	time.Thursday:  WeekdayThursday,
	time.Friday:    WeekdayFriday,
	time.Saturday:  WeekdaySaturday,
	time.Sunday:    WeekdaySunday,
}

// WeekdayOf возвращает день недели по календарной дате самого инстанта,
// без приведения к таймзоне владельца расписания
func WeekdayOf(t time.Time) Weekday {
	return weekdayMap[t.Weekday()]
}

func IsValidWeekday(w Weekday) bool {
	for _, weekday := range WeekdaysInOrder {
		if weekday == w {
			return true
		}
	}
	return false
}
