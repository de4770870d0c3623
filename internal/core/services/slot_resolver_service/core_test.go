package slot_resolver_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

// nopLogger - логгер-заглушка для тестов
type nopLogger struct{}

func (l *nopLogger) Debug(event string, fields out.LogFields) {}
func (l *nopLogger) Info(event string, fields out.LogFields)  {}
func (l *nopLogger) Warn(event string, fields out.LogFields)  {}
func (l *nopLogger) Error(event string, fields out.LogFields) {}
func (l *nopLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return l
}
func (l *nopLogger) WithModule(module string) out.LoggerPort {
	return l
}

type fakeStorage struct {
	schedule    *domain.Schedule
	scheduleErr error
	getCalls    int
}

func (f *fakeStorage) GetSchedule(ctx context.Context, ownerID string) (*domain.Schedule, error) {
	f.getCalls++
	return f.schedule, f.scheduleErr
}

func (f *fakeStorage) ReplaceSchedule(ctx context.Context, ownerID string, timezone string, rules []domain.AvailabilityRule) (*domain.Schedule, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) UpdateEvent(ctx context.Context, event domain.Event) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeStorage) DeleteEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeStorage) GetEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) GetActiveEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) ListEvents(ctx context.Context, ownerID string, onlyActive bool) ([]domain.Event, error) {
	return nil, errors.New("not implemented")
}

type fakeCalendar struct {
	busy      []domain.BusyInterval
	busyErr   error
	calls     int
	scanStart time.Time
	scanEnd   time.Time
}

func (f *fakeCalendar) ListBusyIntervals(ctx context.Context, ownerID string, start, end time.Time) ([]domain.BusyInterval, error) {
	f.calls++
	f.scanStart = start
	f.scanEnd = end
	return f.busy, f.busyErr
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, booking domain.CalendarBooking) error {
	return errors.New("not implemented")
}

type fakeCache struct {
	schedules   map[string]*domain.Schedule
	stored      []string
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{schedules: make(map[string]*domain.Schedule)}
}

func (f *fakeCache) GetSchedule(ctx context.Context, ownerID string) (*domain.Schedule, bool) {
	schedule, exists := f.schedules[ownerID]
	return schedule, exists
}

func (f *fakeCache) StoreSchedule(ctx context.Context, ownerID string, schedule domain.Schedule) {
	f.schedules[ownerID] = &schedule
	f.stored = append(f.stored, ownerID)
}

func (f *fakeCache) InvalidateSchedule(ctx context.Context, ownerID string) {
	delete(f.schedules, ownerID)
	f.invalidated = append(f.invalidated, ownerID)
}

func newTestService(storage *fakeStorage, calendar *fakeCalendar, cache out.CachePort, cfg *config.Config) *SlotResolverService {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return NewSlotResolverService(storage, calendar, cache, &nopLogger{}, cfg)
}

// mondaySchedule - расписание с двумя окнами в понедельник: 09:00-12:00 и 13:00-17:00
func mondaySchedule(timezone string) *domain.Schedule {
	return &domain.Schedule{
		ID:       uuid.New(),
		OwnerID:  "owner-1",
		Timezone: timezone,
		Rules: []domain.AvailabilityRule{
			{ID: uuid.New(), DayOfWeek: domain.WeekdayMonday, StartTime: "09:00", EndTime: "12:00"},
			{ID: uuid.New(), DayOfWeek: domain.WeekdayMonday, StartTime: "13:00", EndTime: "17:00"},
		},
	}
}

// monday - понедельник 2024-01-01, базовая дата большинства сценариев
var monday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func mondayAt(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestResolveSlots_FiltersBusyAndOutOfWindow(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("UTC")}
	calendar := &fakeCalendar{busy: []domain.BusyInterval{
		{Start: mondayAt(10, 0), End: mondayAt(10, 30)},
	}}
	service := newTestService(storage, calendar, nil, nil)

	candidates := []time.Time{
		mondayAt(8, 45),  // до первого окна
		mondayAt(9, 0),   // начало окна
		mondayAt(9, 45),  // заканчивается ровно на начале занятости
		mondayAt(10, 15), // внутри занятости
		mondayAt(12, 30), // между окнами
		mondayAt(16, 45), // заканчивается ровно на конце окна
		mondayAt(17, 0),  // вылезает за конец окна
	}

	resolved, err := service.ResolveSlots(context.Background(), "owner-1", candidates, 15)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{mondayAt(9, 0), mondayAt(9, 45), mondayAt(16, 45)}, resolved)
}

func TestResolveSlots_LongerDurationRejectsMore(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("UTC")}
	calendar := &fakeCalendar{busy: []domain.BusyInterval{
		{Start: mondayAt(10, 0), End: mondayAt(10, 30)},
	}}
	service := newTestService(storage, calendar, nil, nil)

	candidates := []time.Time{
		mondayAt(9, 0),
		mondayAt(9, 45),  // при 30 минутах залезает в занятость
		mondayAt(16, 45), // при 30 минутах вылезает за окно
	}

	resolved, err := service.ResolveSlots(context.Background(), "owner-1", candidates, 30)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{mondayAt(9, 0)}, resolved)
}

func TestResolveSlots_InclusiveWindowBoundaries(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("UTC")}
	calendar := &fakeCalendar{}
	service := newTestService(storage, calendar, nil, nil)

	// Промежуток, совпадающий с окном целиком, бронируем
	resolved, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0)}, 180)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{mondayAt(9, 0)}, resolved)
}

func TestResolveSlots_RejectsSpanAcrossWindows(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("UTC")}
	calendar := &fakeCalendar{}
	service := newTestService(storage, calendar, nil, nil)

	// 11:45 + 90 минут задевает оба окна, но не помещается ни в одно
	resolved, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(11, 45)}, 90)

	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveSlots_PreservesCandidateOrder(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("UTC")}
	calendar := &fakeCalendar{}
	service := newTestService(storage, calendar, nil, nil)

	candidates := []time.Time{mondayAt(16, 0), mondayAt(9, 0), mondayAt(13, 30)}

	resolved, err := service.ResolveSlots(context.Background(), "owner-1", candidates, 15)

	require.NoError(t, err)
	assert.Equal(t, candidates, resolved)
}

func TestResolveSlots_ScanRangeCoversLastMeetingEnd(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("UTC")}
	calendar := &fakeCalendar{busy: []domain.BusyInterval{
		// Занятость начинается ровно на последнем кандидате
		{Start: mondayAt(16, 30), End: mondayAt(17, 0)},
	}}
	service := newTestService(storage, calendar, nil, nil)

	resolved, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0), mondayAt(16, 30)}, 30)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{mondayAt(9, 0)}, resolved)

	// Диапазон выборки тянется до конца встречи последнего кандидата:
	// с эксклюзивной верхней границей календаря такое событие иначе не попало бы в выборку
	assert.True(t, calendar.scanStart.Equal(mondayAt(9, 0)))
	assert.True(t, calendar.scanEnd.Equal(mondayAt(17, 0)))
}

func TestResolveSlots_EmptyCandidates(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("UTC")}
	calendar := &fakeCalendar{}
	service := newTestService(storage, calendar, nil, nil)

	resolved, err := service.ResolveSlots(context.Background(), "owner-1", nil, 30)

	require.NoError(t, err)
	assert.NotNil(t, resolved)
	assert.Empty(t, resolved)
	// Без кандидатов нет смысла ходить ни в хранилище, ни в календарь
	assert.Zero(t, storage.getCalls)
	assert.Zero(t, calendar.calls)
}

func TestResolveSlots_InvalidDuration(t *testing.T) {
	service := newTestService(&fakeStorage{}, &fakeCalendar{}, nil, nil)

	for _, duration := range []int{0, -30} {
		_, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0)}, duration)

		assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	}
}

func TestResolveSlots_NoSchedule(t *testing.T) {
	storage := &fakeStorage{schedule: nil}
	service := newTestService(storage, &fakeCalendar{}, nil, nil)

	resolved, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0)}, 30)

	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveSlots_MissingTimezone(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("")}
	service := newTestService(storage, &fakeCalendar{}, nil, nil)

	_, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0)}, 30)

	assert.ErrorIs(t, err, domain.ErrMissingTimezone)
}

func TestResolveSlots_UnloadableTimezone(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("Mars/Phobos")}
	service := newTestService(storage, &fakeCalendar{}, nil, nil)

	_, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0)}, 30)

	assert.ErrorIs(t, err, domain.ErrMissingTimezone)
}

func TestResolveSlots_BusySourceUnavailable(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("UTC")}
	calendar := &fakeCalendar{busyErr: errors.New("google: 503")}
	service := newTestService(storage, calendar, nil, nil)

	_, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0)}, 30)

	// Без полной картины занятости выдавать слоты нельзя
	assert.ErrorIs(t, err, domain.ErrBusySourceUnavailable)
}

func TestResolveSlots_OwnerTimezoneWindows(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("America/New_York")}
	calendar := &fakeCalendar{}
	service := newTestService(storage, calendar, nil, nil)

	candidates := []time.Time{
		// 15:00 Нью-Йорка = 20:00 UTC, внутри окна 13:00-17:00
		mondayAt(20, 0),
		// 09:00 UTC = 04:00 Нью-Йорка, до начала рабочего дня
		mondayAt(9, 0),
	}

	resolved, err := service.ResolveSlots(context.Background(), "owner-1", candidates, 30)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{mondayAt(20, 0)}, resolved)
}

func TestResolveSlots_WeekdayFromOwnCalendarDate(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("America/New_York")}
	calendar := &fakeCalendar{}
	service := newTestService(storage, calendar, nil, nil)

	// 02:00 UTC вторника - это 21:00 понедельника в Нью-Йорке,
	// но день недели кандидата считается по его собственной дате:
	// правил на вторник нет, кандидат отклоняется
	tuesdayNight := time.Date(2024, time.January, 2, 2, 0, 0, 0, time.UTC)

	resolved, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{tuesdayNight}, 30)

	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveSlots_CacheHitSkipsStorage(t *testing.T) {
	storage := &fakeStorage{schedule: nil}
	cache := newFakeCache()
	cache.schedules["owner-1"] = mondaySchedule("UTC")

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	service := newTestService(storage, &fakeCalendar{}, cache, cfg)

	resolved, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0)}, 30)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{mondayAt(9, 0)}, resolved)
	assert.Zero(t, storage.getCalls)
}

func TestResolveSlots_CacheMissStoresSchedule(t *testing.T) {
	storage := &fakeStorage{schedule: mondaySchedule("UTC")}
	cache := newFakeCache()

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	service := newTestService(storage, &fakeCalendar{}, cache, cfg)

	_, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0)}, 30)

	require.NoError(t, err)
	assert.Equal(t, 1, storage.getCalls)
	assert.Equal(t, []string{"owner-1"}, cache.stored)
}

func TestResolveSlots_MissingScheduleNotCached(t *testing.T) {
	storage := &fakeStorage{schedule: nil}
	cache := newFakeCache()

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	service := newTestService(storage, &fakeCalendar{}, cache, cfg)

	_, err := service.ResolveSlots(context.Background(), "owner-1", []time.Time{mondayAt(9, 0)}, 30)

	require.NoError(t, err)
	assert.Empty(t, cache.stored)
}
