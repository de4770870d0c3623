package event_service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

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
	updated        bool
	deleted        bool
	events         []domain.Event
	listOnlyActive *bool
}

func (f *fakeStorage) GetSchedule(ctx context.Context, ownerID string) (*domain.Schedule, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) ReplaceSchedule(ctx context.Context, ownerID string, timezone string, rules []domain.AvailabilityRule) (*domain.Schedule, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	event.ID = uuid.New()
	return &event, nil
}

func (f *fakeStorage) UpdateEvent(ctx context.Context, event domain.Event) (bool, error) {
	return f.updated, nil
}

func (f *fakeStorage) DeleteEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (bool, error) {
	return f.deleted, nil
}

func (f *fakeStorage) GetEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error) {
	return nil, nil
}

func (f *fakeStorage) GetActiveEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error) {
	return nil, nil
}

func (f *fakeStorage) ListEvents(ctx context.Context, ownerID string, onlyActive bool) ([]domain.Event, error) {
	f.listOnlyActive = &onlyActive
	return f.events, nil
}

func TestCreateEvent(t *testing.T) {
	service := NewEventService(&fakeStorage{}, &nopLogger{})

	created, err := service.CreateEvent(context.Background(), domain.Event{
		OwnerID:           "owner-1",
		Name:              "Интро-звонок",
		DurationInMinutes: 30,
		IsActive:          true,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestUpdateEvent_NotFound(t *testing.T) {
	service := NewEventService(&fakeStorage{updated: false}, &nopLogger{})

	err := service.UpdateEvent(context.Background(), domain.Event{ID: uuid.New(), OwnerID: "owner-1"})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	service := NewEventService(&fakeStorage{deleted: false}, &nopLogger{})

	err := service.DeleteEvent(context.Background(), "owner-1", uuid.New())

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestListEvents_PublicFiltersInactive(t *testing.T) {
	storage := &fakeStorage{}
	service := NewEventService(storage, &nopLogger{})

	_, err := service.ListEvents(context.Background(), "owner-1")
	require.NoError(t, err)
	require.NotNil(t, storage.listOnlyActive)
	assert.False(t, *storage.listOnlyActive)

	_, err = service.ListPublicEvents(context.Background(), "owner-1")
	require.NoError(t, err)
	require.NotNil(t, storage.listOnlyActive)
	assert.True(t, *storage.listOnlyActive)
}
