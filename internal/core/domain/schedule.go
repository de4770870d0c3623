package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// clockPattern - строгий формат HH:MM, часы 00-23, минуты 00-59
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type AvailabilityRule struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek Weekday   `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

type Schedule struct {
	ID        uuid.UUID          `json:"id"`
	OwnerID   string             `json:"ownerId"`
	Timezone  string             `json:"timezone"`
	Rules     []AvailabilityRule `json:"availabilities"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// RulesByWeekday группирует правила по дню недели.
// Группировка выполняется один раз на резолв, а не на каждого кандидата
func (s *Schedule) RulesByWeekday() map[Weekday][]AvailabilityRule {
	grouped := make(map[Weekday][]AvailabilityRule)
	for _, rule := range s.Rules {
		grouped[rule.DayOfWeek] = append(grouped[rule.DayOfWeek], rule)
	}
	return grouped
}

func IsClock(value string) bool {
	return clockPattern.MatchString(value)
}

// ClockParts разбирает валидную строку HH:MM на часы и минуты.
// Для невалидной строки возвращает нули
func ClockParts(value string) (int, int) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0
	}

	return hours, minutes
}

// ClockToFloat переводит HH:MM в дробные часы (hours + minutes/60).
// Общий примитив для проверки порядка времени и пересечения правил
func ClockToFloat(value string) float64 {
	hours, minutes := ClockParts(value)
	return float64(hours) + float64(minutes)/60
}
