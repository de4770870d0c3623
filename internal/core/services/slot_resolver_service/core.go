package slot_resolver_service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

type SlotResolverService struct {
	storagePort  out.StoragePort
	calendarPort out.CalendarPort
	cachePort    out.CachePort
	logger       out.LoggerPort
	cfg          *config.Config
}

func NewSlotResolverService(
	storagePort out.StoragePort,
	calendarPort out.CalendarPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
	cfg *config.Config,
) *SlotResolverService {
	return &SlotResolverService{
		storagePort:  storagePort,
		calendarPort: calendarPort,
		cachePort:    cachePort,
		logger:       logger.WithModule("SlotResolverService"),
		cfg:          cfg,
	}
}

// ResolveSlots фильтрует кандидатов до тех, на которые можно забронировать
// встречу заданной длительности: кандидат остается, если предложенный промежуток
// не пересекает ни один занятый и целиком помещается хотя бы в одно окно доступности
func (s *SlotResolverService) ResolveSlots(ctx context.Context, ownerID string, candidates []time.Time, durationMinutes int) ([]time.Time, error) {
	debugInfo := newResolveDebug()

	s.logger.Info("slots.resolve.started", out.LogFields{
		"ownerId":         ownerID,
		"candidates":      len(candidates),
		"durationMinutes": durationMinutes,
	})

	// Пустой список кандидатов - это "нечего проверять", а не ошибка
	if len(candidates) == 0 {
		return []time.Time{}, nil
	}

	if durationMinutes <= 0 {
		s.logger.Warn("slots.resolve.invalid_duration", out.LogFields{
			"ownerId":         ownerID,
			"durationMinutes": durationMinutes,
		})
		return nil, fmt.Errorf("slots.resolve.invalid_duration: %w", domain.ErrInvalidDuration)
	}

	duration := time.Duration(durationMinutes) * time.Minute

	// Диапазон выборки занятости: от первого кандидата до конца встречи
	// последнего. Верхняя граница у календарных API эксклюзивная, без добавки
	// длительности событие, начинающееся ровно на последнем кандидате,
	// не попало бы в выборку
	scanStart := candidates[0]
	scanEnd := candidates[len(candidates)-1].Add(duration)

	var schedule *domain.Schedule
	var busy []domain.BusyInterval

	// Расписание и занятость - независимые чтения, выполняем их параллельно,
	// фильтрация начинается только когда завершились оба
	fetchDebug := domain.NewDebugInfo("slots.resolve.fetch")

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		loaded, err := s.getSchedule(groupCtx, ownerID)
		if err != nil {
			return fmt.Errorf("slots.resolve.schedule.fetch_failed: %w", err)
		}
		schedule = loaded
		return nil
	})
	group.Go(func() error {
		intervals, err := s.calendarPort.ListBusyIntervals(groupCtx, ownerID, scanStart, scanEnd)
		if err != nil {
			// Без полной картины занятости продолжать нельзя:
			// частичные данные означали бы конфликтующие слоты в выдаче
			return fmt.Errorf("%w: %v", domain.ErrBusySourceUnavailable, err)
		}
		busy = intervals
		return nil
	})
	if err := group.Wait(); err != nil {
		s.logger.Error("slots.resolve.fetch_failed", out.LogFields{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, err
	}

	fetchDebug.Elapse()
	debugInfo.add(fetchDebug)

	// Владелец без расписания - пустой результат, бронировать не на что
	if schedule == nil {
		s.logger.Info("slots.resolve.no_schedule", out.LogFields{
			"ownerId": ownerID,
		})
		return []time.Time{}, nil
	}

	if schedule.Timezone == "" {
		return nil, fmt.Errorf("slots.resolve.timezone.empty: %w", domain.ErrMissingTimezone)
	}
	location, err := time.LoadLocation(schedule.Timezone)
	if err != nil {
		// Таймзона, которую нельзя загрузить, так же бесполезна, как отсутствующая
		s.logger.Error("slots.resolve.timezone.load_failed", out.LogFields{
			"ownerId":  ownerID,
			"timezone": schedule.Timezone,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("slots.resolve.timezone.load_failed: %w", domain.ErrMissingTimezone)
	}

	grouped := schedule.RulesByWeekday()

	filterDebug := domain.NewDebugInfo("slots.resolve.filter")

	resolved := make([]time.Time, 0, len(candidates))
	for _, candidate := range candidates {
		if s.isBookable(candidate, duration, grouped, location, busy) {
			resolved = append(resolved, candidate)
		}
	}

	filterDebug.Elapse()
	debugInfo.add(filterDebug)

	s.logger.Info("slots.resolve.finished", out.LogFields{
		"ownerId":  ownerID,
		"resolved": len(resolved),
		"rejected": len(candidates) - len(resolved),
	})
	debugInfo.flush(s.logger)

	return resolved, nil
}

// isBookable проверяет одного кандидата против занятости и окон доступности его дня
func (s *SlotResolverService) isBookable(
	candidate time.Time,
	duration time.Duration,
	grouped map[domain.Weekday][]domain.AvailabilityRule,
	location *time.Location,
	busy []domain.BusyInterval,
) bool {
	// День недели считаем по календарной дате самого кандидата,
	// окна при этом строятся в таймзоне владельца
	weekday := domain.WeekdayOf(candidate)
	rules := grouped[weekday]
	if len(rules) == 0 {
		return false
	}

	candidateEnd := candidate.Add(duration)

	if domain.OverlapsAny(busy, candidate, candidateEnd) {
		return false
	}

	for _, window := range availabilityWindows(rules, candidate, location) {
		if window.contains(candidate) && window.contains(candidateEnd) {
			return true
		}
	}

	return false
}
