package event_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

type EventService struct {
	storagePort out.StoragePort
	logger      out.LoggerPort
}

func NewEventService(storagePort out.StoragePort, logger out.LoggerPort) *EventService {
	return &EventService{
		storagePort: storagePort,
		logger:      logger.WithModule("EventService"),
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	created, err := s.storagePort.CreateEvent(ctx, event)
	if err != nil {
		s.logger.Error("events.create.failed", out.LogFields{
			"ownerId": event.OwnerID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("events.create.failed: %w", err)
	}

	s.logger.Info("events.create.finished", out.LogFields{
		"ownerId": created.OwnerID,
		"eventId": created.ID,
	})

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) error {
	updated, err := s.storagePort.UpdateEvent(ctx, event)
	if err != nil {
		s.logger.Error("events.update.failed", out.LogFields{
			"ownerId": event.OwnerID,
			"eventId": event.ID,
			"error":   err.Error(),
		})
		return fmt.Errorf("events.update.failed: %w", err)
	}
	// Чужие и несуществующие события неразличимы для вызывающего
	if !updated {
		return fmt.Errorf("events.update.not_found: %w", domain.ErrEventNotFound)
	}

	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, ownerID string, eventID uuid.UUID) error {
	deleted, err := s.storagePort.DeleteEvent(ctx, ownerID, eventID)
	if err != nil {
		s.logger.Error("events.delete.failed", out.LogFields{
			"ownerId": ownerID,
			"eventId": eventID,
			"error":   err.Error(),
		})
		return fmt.Errorf("events.delete.failed: %w", err)
	}
	if !deleted {
		return fmt.Errorf("events.delete.not_found: %w", domain.ErrEventNotFound)
	}

	return nil
}

func (s *EventService) GetEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error) {
	event, err := s.storagePort.GetEvent(ctx, ownerID, eventID)
	if err != nil {
		return nil, fmt.Errorf("events.get.failed: %w", err)
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, ownerID string) ([]domain.Event, error) {
	events, err := s.storagePort.ListEvents(ctx, ownerID, false)
	if err != nil {
		return nil, fmt.Errorf("events.list.failed: %w", err)
	}
	return events, nil
}

// ListPublicEvents возвращает только события, открытые для бронирования гостями
func (s *EventService) ListPublicEvents(ctx context.Context, ownerID string) ([]domain.Event, error) {
	events, err := s.storagePort.ListEvents(ctx, ownerID, true)
	if err != nil {
		return nil, fmt.Errorf("events.list_public.failed: %w", err)
	}
	return events, nil
}
