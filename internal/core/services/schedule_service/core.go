package schedule_service

import (
	"context"
	"fmt"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

type ScheduleService struct {
	storagePort   out.StoragePort
	cachePort     out.CachePort
	publisherPort out.SchedulePublisherPort
	logger        out.LoggerPort
	cfg           *config.Config
}

func NewScheduleService(
	storagePort out.StoragePort,
	cachePort out.CachePort,
	publisherPort out.SchedulePublisherPort,
	logger out.LoggerPort,
	cfg *config.Config,
) *ScheduleService {
	return &ScheduleService{
		storagePort:   storagePort,
		cachePort:     cachePort,
		publisherPort: publisherPort,
		logger:        logger.WithModule("ScheduleService"),
		cfg:           cfg,
	}
}

func (s *ScheduleService) GetSchedule(ctx context.Context, ownerID string) (*domain.Schedule, error) {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if schedule, exists := s.cachePort.GetSchedule(ctx, ownerID); exists {
			s.logger.Debug("schedule.get.cache_hit", out.LogFields{
				"ownerId": ownerID,
			})
			return schedule, nil
		}
	}

	schedule, err := s.storagePort.GetSchedule(ctx, ownerID)
	if err != nil {
		s.logger.Error("schedule.get.fetch_failed", out.LogFields{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("schedule.get.fetch_failed: %w", err)
	}

	if schedule != nil && s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreSchedule(ctx, ownerID, *schedule)
	}

	return schedule, nil
}

// SaveSchedule валидирует набор правил и атомарно заменяет расписание владельца.
// Нарушения возвращаются списком, хранилище при этом не трогается
func (s *ScheduleService) SaveSchedule(ctx context.Context, ownerID string, timezone string, rules []domain.AvailabilityRule) ([]domain.RuleViolation, error) {
	s.logger.Info("schedule.save.started", out.LogFields{
		"ownerId":  ownerID,
		"timezone": timezone,
		"rules":    len(rules),
	})

	violations := domain.ValidateSchedule(timezone, rules)
	if len(violations) > 0 {
		s.logger.Warn("schedule.save.rejected", out.LogFields{
			"ownerId":    ownerID,
			"violations": len(violations),
		})
		return violations, nil
	}

	// Замена целиком: delete-then-insert одной транзакцией на стороне адаптера,
	// параллельный резолв видит либо старое расписание, либо новое
	if _, err := s.storagePort.ReplaceSchedule(ctx, ownerID, timezone, rules); err != nil {
		s.logger.Error("schedule.save.replace_failed", out.LogFields{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("schedule.save.replace_failed: %w", err)
	}

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.InvalidateSchedule(ctx, ownerID)
	}

	// Локальная инвалидация не видна другим инстансам - им уходит сообщение
	// в очередь. Расписание уже сохранено, ошибка публикации его не откатывает
	if s.publisherPort != nil {
		if err := s.publisherPort.PublishScheduleChanged(ctx, ownerID); err != nil {
			s.logger.Error("schedule.save.publish_failed", out.LogFields{
				"ownerId": ownerID,
				"error":   err.Error(),
			})
		}
	}

	s.logger.Info("schedule.save.finished", out.LogFields{
		"ownerId": ownerID,
	})

	return nil, nil
}
