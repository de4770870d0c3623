package slot_resolver_service

import (
	"sync"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

// resolveDebug копит замеры этапов одного резолва
type resolveDebug struct {
	mu   sync.Mutex
	data []domain.DebugInfo
}

func newResolveDebug() *resolveDebug {
	return &resolveDebug{
		data: make([]domain.DebugInfo, 0),
	}
}

func (d *resolveDebug) add(info domain.DebugInfo) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.data = append(d.data, info)
}

func (d *resolveDebug) flush(logger out.LoggerPort) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, info := range d.data {
		logger.Debug("slots.resolve.timing", out.LogFields{
			"event":  info.Event,
			"timing": info.Timing,
		})
	}
}
