package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

// LRUCacheAdapter кэширует расписания по владельцу.
// Запись инвалидируется при сохранении расписания и по сообщениям из очереди
type LRUCacheAdapter struct {
	schedules *lru.Cache[string, *domain.Schedule]
	mu        sync.RWMutex
	logger    out.LoggerPort
}

func NewLRUCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*LRUCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	schedules, err := lru.New[string, *domain.Schedule](cfg.Cache.SchedulesSize)
	if err != nil {
		logger.Error("cache.init_failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.SchedulesSize,
		})
		return nil, err
	}

	return &LRUCacheAdapter{
		schedules: schedules,
		logger:    logger,
	}, nil
}

func (c *LRUCacheAdapter) GetSchedule(ctx context.Context, ownerID string) (*domain.Schedule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	schedule, exists := c.schedules.Get(ownerID)
	if !exists {
		c.logger.Debug("cache.schedule.miss", out.LogFields{
			"ownerId": ownerID,
		})
		return nil, false
	}

	c.logger.Debug("cache.schedule.hit", out.LogFields{
		"ownerId": ownerID,
	})
	return schedule, true
}

func (c *LRUCacheAdapter) StoreSchedule(ctx context.Context, ownerID string, schedule domain.Schedule) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.schedule.store", out.LogFields{
		"ownerId": ownerID,
		"rules":   len(schedule.Rules),
	})

	c.schedules.Add(ownerID, &schedule)
}

func (c *LRUCacheAdapter) InvalidateSchedule(ctx context.Context, ownerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.schedule.invalidate", out.LogFields{
		"ownerId": ownerID,
	})

	c.schedules.Remove(ownerID)
}
