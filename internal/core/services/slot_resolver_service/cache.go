package slot_resolver_service

import (
	"context"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

// getSchedule читает расписание владельца через кэш, с добором из хранилища
func (s *SlotResolverService) getSchedule(ctx context.Context, ownerID string) (*domain.Schedule, error) {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if schedule, exists := s.cachePort.GetSchedule(ctx, ownerID); exists {
			s.logger.Debug("slots.resolve.schedule.cache_hit", out.LogFields{
				"ownerId": ownerID,
			})
			return schedule, nil
		}
	}

	schedule, err := s.storagePort.GetSchedule(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Отсутствующее расписание не кэшируем, чтобы свежесохраненное
	// не перекрывалось отрицательной записью
	if schedule != nil && s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreSchedule(ctx, ownerID, *schedule)
	}

	return schedule, nil
}
