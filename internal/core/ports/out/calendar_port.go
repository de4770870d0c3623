package out

import (
	"context"
	"time"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
)

type CalendarPort interface {
	// Занятые промежутки владельца в диапазоне [start, end), верхняя граница
	// эксклюзивная. События на весь день адаптер обязан нормализовать к полуночам
	ListBusyIntervals(ctx context.Context, ownerID string, start, end time.Time) ([]domain.BusyInterval, error)

	// Создание события о брони в календаре владельца
	CreateEvent(ctx context.Context, booking domain.CalendarBooking) error
}
