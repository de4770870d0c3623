package domain

// ValidateSchedule проверяет набор правил доступности перед сохранением.
// Все нарушения собираются в один список, без остановки на первом,
// никаких побочных эффектов
func ValidateSchedule(timezone string, rules []AvailabilityRule) []RuleViolation {
	violations := make([]RuleViolation, 0)

	if timezone == "" {
		violations = append(violations, RuleViolation{
			Kind:      RuleViolationFieldFormat,
			RuleIndex: -1,
			Field:     "timezone",
			Message:   "Required",
		})
	}

	for index, rule := range rules {
		if !IsValidWeekday(rule.DayOfWeek) {
			violations = append(violations, RuleViolation{
				Kind:      RuleViolationFieldFormat,
				RuleIndex: index,
				Field:     "dayOfWeek",
				Message:   "Unknown day of week",
			})
		}
		if !IsClock(rule.StartTime) {
			violations = append(violations, RuleViolation{
				Kind:      RuleViolationFieldFormat,
				RuleIndex: index,
				Field:     "startTime",
				Message:   "Time must be in the format HH:MM",
			})
		}
		if !IsClock(rule.EndTime) {
			violations = append(violations, RuleViolation{
				Kind:      RuleViolationFieldFormat,
				RuleIndex: index,
				Field:     "endTime",
				Message:   "Time must be in the format HH:MM",
			})
		}
	}

	// Семантические проверки имеют смысл только для корректно заполненных правил
	for index, rule := range rules {
		if !IsClock(rule.StartTime) || !IsClock(rule.EndTime) {
			continue
		}

		if ClockToFloat(rule.StartTime) >= ClockToFloat(rule.EndTime) {
			violations = append(violations, RuleViolation{
				Kind:      RuleViolationInvalidRange,
				RuleIndex: index,
				Field:     "endTime",
				Message:   "End time must be after start time",
			})
		}

		// Полуинтервальное пересечение с каждым более ранним правилом того же дня,
		// нарушение вешается на правило с большим индексом.
		// Квадратичный проход допустим: правил максимум 7 дней по несколько окон
		for earlierIndex := 0; earlierIndex < index; earlierIndex++ {
			earlier := rules[earlierIndex]
			if earlier.DayOfWeek != rule.DayOfWeek {
				continue
			}
			if !IsClock(earlier.StartTime) || !IsClock(earlier.EndTime) {
				continue
			}

			if ClockToFloat(earlier.StartTime) < ClockToFloat(rule.EndTime) &&
				ClockToFloat(earlier.EndTime) > ClockToFloat(rule.StartTime) {
				violations = append(violations, RuleViolation{
					Kind:      RuleViolationOverlap,
					RuleIndex: index,
					Field:     "startTime",
					Message:   "Availability overlaps with another",
				})
				break
			}
		}
	}

	return violations
}
