package in

import (
	"context"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
)

type ScheduleUseCase interface {
	// Чтение расписания владельца, nil если расписание не сохранялось
	GetSchedule(ctx context.Context, ownerID string) (*domain.Schedule, error)

	// Валидация и атомарная замена расписания.
	// Непустой список нарушений означает, что хранилище не трогали
	SaveSchedule(ctx context.Context, ownerID string, timezone string, rules []domain.AvailabilityRule) ([]domain.RuleViolation, error)
}
