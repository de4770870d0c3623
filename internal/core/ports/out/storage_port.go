package out

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
)

type StoragePort interface {
	// Методы для работы с расписаниями
	GetSchedule(ctx context.Context, ownerID string) (*domain.Schedule, error)
	ReplaceSchedule(ctx context.Context, ownerID string, timezone string, rules []domain.AvailabilityRule) (*domain.Schedule, error)

	// Методы для работы с типами встреч
	CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (bool, error)
	DeleteEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (bool, error)
	GetEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error)
	GetActiveEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error)
	ListEvents(ctx context.Context, ownerID string, onlyActive bool) ([]domain.Event, error)
}
