package in

import (
	"context"
	"time"
)

type SlotResolverUseCase interface {
	// Фильтрация кандидатов до тех, на которые реально можно забронировать встречу.
	// Порядок кандидатов сохраняется, пустой результат - не ошибка
	ResolveSlots(ctx context.Context, ownerID string, candidates []time.Time, durationMinutes int) ([]time.Time, error)
}
