package in

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, ownerID string, eventID uuid.UUID) error
	GetEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error)

	// Списки типов встреч владельца: все или только открытые для бронирования
	ListEvents(ctx context.Context, ownerID string) ([]domain.Event, error)
	ListPublicEvents(ctx context.Context, ownerID string) ([]domain.Event, error)
}
