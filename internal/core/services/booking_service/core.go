package booking_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/in"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

type BookingService struct {
	storagePort  out.StoragePort
	calendarPort out.CalendarPort
	slotResolver in.SlotResolverUseCase
	logger       out.LoggerPort
}

func NewBookingService(
	storagePort out.StoragePort,
	calendarPort out.CalendarPort,
	slotResolver in.SlotResolverUseCase,
	logger out.LoggerPort,
) *BookingService {
	return &BookingService{
		storagePort:  storagePort,
		calendarPort: calendarPort,
		slotResolver: slotResolver,
		logger:       logger.WithModule("BookingService"),
	}
}

// CreateBooking бронирует встречу: выбранное гостем время повторно прогоняется
// через резолвер как единственный кандидат, чтобы между показом слотов и
// подтверждением никто не успел занять это время
func (s *BookingService) CreateBooking(ctx context.Context, request domain.BookingRequest) (*domain.BookingConfirmation, error) {
	s.logger.Info("booking.create.started", out.LogFields{
		"ownerId": request.OwnerID,
		"eventId": request.EventID,
	})

	event, err := s.storagePort.GetActiveEvent(ctx, request.OwnerID, request.EventID)
	if err != nil {
		s.logger.Error("booking.create.event.fetch_failed", out.LogFields{
			"ownerId": request.OwnerID,
			"eventId": request.EventID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("booking.create.event.fetch_failed: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("booking.create.event.not_found: %w", domain.ErrEventNotFound)
	}

	// Настенное время гостя превращаем в абсолютный момент через его таймзону
	guestLocation, err := time.LoadLocation(request.Timezone)
	if err != nil {
		return nil, fmt.Errorf("booking.create.timezone.load_failed: %w", domain.ErrMissingTimezone)
	}
	startTime := inLocation(request.StartTime, guestLocation)

	validTimes, err := s.slotResolver.ResolveSlots(ctx, request.OwnerID, []time.Time{startTime}, event.DurationInMinutes)
	if err != nil {
		return nil, fmt.Errorf("booking.create.resolve_failed: %w", err)
	}
	if len(validTimes) == 0 {
		s.logger.Warn("booking.create.time_not_available", out.LogFields{
			"ownerId":   request.OwnerID,
			"eventId":   request.EventID,
			"startTime": startTime,
		})
		return nil, fmt.Errorf("booking.create.time_not_available: %w", domain.ErrTimeNotAvailable)
	}

	calendarBooking := domain.CalendarBooking{
		OwnerID:           request.OwnerID,
		EventName:         event.Name,
		GuestName:         request.GuestName,
		GuestEmail:        request.GuestEmail,
		GuestNotes:        request.GuestNotes,
		StartTime:         startTime,
		DurationInMinutes: event.DurationInMinutes,
	}
	if err := s.calendarPort.CreateEvent(ctx, calendarBooking); err != nil {
		s.logger.Error("booking.create.calendar_failed", out.LogFields{
			"ownerId": request.OwnerID,
			"eventId": request.EventID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("booking.create.calendar_failed: %w", err)
	}

	s.logger.Info("booking.create.finished", out.LogFields{
		"ownerId":   request.OwnerID,
		"eventId":   request.EventID,
		"startTime": startTime,
	})

	return &domain.BookingConfirmation{
		OwnerID:   request.OwnerID,
		EventID:   request.EventID,
		StartTime: startTime,
	}, nil
}

// inLocation переинтерпретирует настенные компоненты времени в другой таймзоне
func inLocation(t time.Time, location *time.Location) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return time.Date(year, month, day, hour, minute, second, 0, location)
}
