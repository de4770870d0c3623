package out

import (
	"context"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
)

type CachePort interface {
	// Кэширование расписаний по владельцу
	GetSchedule(ctx context.Context, ownerID string) (*domain.Schedule, bool)
	StoreSchedule(ctx context.Context, ownerID string, schedule domain.Schedule)
	InvalidateSchedule(ctx context.Context, ownerID string)
}
