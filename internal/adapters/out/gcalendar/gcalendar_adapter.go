package gcalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
	"github.com/suchimauz/booking-slots-resolver/internal/utils"
)

// maxEventsPerList - максимум событий в одном ответе calendar API
const maxEventsPerList = 2500

// GCalendarAdapter читает занятость и создает брони в Google-календаре владельца.
// Идентификатор владельца совпадает с идентификатором его календаря (email)
type GCalendarAdapter struct {
	service  *calendar.Service
	location *time.Location
	logger   out.LoggerPort
}

func NewGCalendarAdapter(ctx context.Context, cfg *config.Config, logger out.LoggerPort) (*GCalendarAdapter, error) {
	service, err := calendar.NewService(ctx,
		option.WithCredentialsFile(cfg.GoogleCalendar.CredentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		logger.Error("gcalendar.init_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		location = time.UTC
	}

	return &GCalendarAdapter{
		service:  service,
		location: location,
		logger:   logger,
	}, nil
}

// ListBusyIntervals возвращает занятые промежутки владельца в [start, end),
// timeMax у Google эксклюзивный. Повторяющиеся события разворачиваются в
// единичные, события на весь день нормализуются к границам суток,
// записи без времени пропускаются
func (a *GCalendarAdapter) ListBusyIntervals(ctx context.Context, ownerID string, start, end time.Time) ([]domain.BusyInterval, error) {
	a.logger.Info("gcalendar.busy.fetch", out.LogFields{
		"ownerId": ownerID,
		"start":   start,
		"end":     end,
	})

	events, err := a.service.Events.List(ownerID).
		Context(ctx).
		SingleEvents(true).
		EventTypes("default").
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		MaxResults(maxEventsPerList).
		Do()
	if err != nil {
		a.logger.Error("gcalendar.busy.fetch_failed", out.LogFields{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, err
	}

	intervals := make([]domain.BusyInterval, 0, len(events.Items))
	for _, item := range events.Items {
		if item.Start == nil || item.End == nil {
			continue
		}

		// События на весь день приходят голой датой, конец у Google уже
		// эксклюзивный - выравниваем обе границы по полуночи
		if item.Start.Date != "" && item.End.Date != "" {
			dayStart, err := utils.ParseDate(item.Start.Date, a.location)
			if err != nil {
				continue
			}
			dayEnd, err := utils.ParseDate(item.End.Date, a.location)
			if err != nil {
				continue
			}
			intervals = append(intervals, domain.BusyInterval{
				Start: utils.StartOfDay(dayStart),
				End:   utils.StartOfDay(dayEnd),
			})
			continue
		}

		if item.Start.DateTime != "" && item.End.DateTime != "" {
			eventStart, err := utils.ParseDate(item.Start.DateTime, a.location)
			if err != nil {
				continue
			}
			eventEnd, err := utils.ParseDate(item.End.DateTime, a.location)
			if err != nil {
				continue
			}
			intervals = append(intervals, domain.BusyInterval{
				Start: eventStart,
				End:   eventEnd,
			})
		}
	}

	a.logger.Debug("gcalendar.busy.fetch_success", out.LogFields{
		"ownerId": ownerID,
		"count":   len(intervals),
	})

	return intervals, nil
}

// CreateEvent создает событие о брони в календаре владельца
// и рассылает приглашения обоим участникам
func (a *GCalendarAdapter) CreateEvent(ctx context.Context, booking domain.CalendarBooking) error {
	a.logger.Info("gcalendar.event.create", out.LogFields{
		"ownerId":   booking.OwnerID,
		"startTime": booking.StartTime,
	})

	description := "No additional details."
	if booking.GuestNotes != "" {
		description = fmt.Sprintf("Additional Details: %s", booking.GuestNotes)
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("%s: %s", booking.GuestName, booking.EventName),
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: booking.StartTime.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: booking.EndTime().Format(time.RFC3339),
		},
		Attendees: []*calendar.EventAttendee{
			{Email: booking.GuestEmail, DisplayName: booking.GuestName},
			{Email: booking.OwnerID, ResponseStatus: "accepted"},
		},
	}

	_, err := a.service.Events.Insert(booking.OwnerID, event).
		Context(ctx).
		SendUpdates("all").
		Do()
	if err != nil {
		a.logger.Error("gcalendar.event.create_failed", out.LogFields{
			"ownerId": booking.OwnerID,
			"error":   err.Error(),
		})
		return err
	}

	return nil
}
