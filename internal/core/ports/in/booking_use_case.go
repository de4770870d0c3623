package in

import (
	"context"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
)

type BookingUseCase interface {
	// Бронирование встречи гостем: выбранное время повторно проверяется
	// через резолвер перед созданием события в календаре
	CreateBooking(ctx context.Context, request domain.BookingRequest) (*domain.BookingConfirmation, error)
}
