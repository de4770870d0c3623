package domain

import "errors"

var (
	// Ошибки резолва слотов, фатальные для всего вызова
	ErrInvalidDuration       = errors.New("duration must be a positive number of minutes")
	ErrMissingTimezone       = errors.New("schedule has no usable timezone")
	ErrBusySourceUnavailable = errors.New("busy calendar source is unavailable")

	// Ошибки бронирования
	ErrEventNotFound    = errors.New("event not found or inactive")
	ErrTimeNotAvailable = errors.New("selected time is not available")
)

type RuleViolationKind string

const (
	RuleViolationFieldFormat  RuleViolationKind = "field_format"
	RuleViolationInvalidRange RuleViolationKind = "invalid_range"
	RuleViolationOverlap      RuleViolationKind = "overlap"
)

// RuleViolation - структурная ошибка валидации расписания, адресованная
// до конкретного поля конкретного правила, чтобы UI мог подсветить его.
// RuleIndex = -1 для нарушений уровня расписания (таймзона)
type RuleViolation struct {
	Kind      RuleViolationKind `json:"kind"`
	RuleIndex int               `json:"ruleIndex"`
	Field     string            `json:"field"`
	Message   string            `json:"message"`
}
