package slot_resolver_service

import (
	"time"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
)

// availabilityWindow - окно доступности, материализованное на конкретную дату,
// границы включительные с обеих сторон
type availabilityWindow struct {
	start time.Time
	end   time.Time
}

func (w availabilityWindow) contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

// availabilityWindows строит абсолютные окна доступности для дня кандидата:
// настенное HH:MM каждого правила привязывается к календарной дате кандидата
// и интерпретируется в таймзоне владельца расписания
func availabilityWindows(rules []domain.AvailabilityRule, candidate time.Time, location *time.Location) []availabilityWindow {
	year, month, day := candidate.Date()

	windows := make([]availabilityWindow, 0, len(rules))
	for _, rule := range rules {
		startHour, startMinute := domain.ClockParts(rule.StartTime)
		endHour, endMinute := domain.ClockParts(rule.EndTime)

		windows = append(windows, availabilityWindow{
			start: time.Date(year, month, day, startHour, startMinute, 0, 0, location),
			end:   time.Date(year, month, day, endHour, endMinute, 0, 0, location),
		})
	}

	return windows
}
