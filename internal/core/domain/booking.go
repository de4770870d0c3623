package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingRequest - запрос гостя на бронирование встречи.
// StartTime приходит без таймзоны и интерпретируется в Timezone гостя
type BookingRequest struct {
	OwnerID    string    `json:"ownerId"`
	EventID    uuid.UUID `json:"eventId"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	GuestNotes string    `json:"guestNotes"`
	Timezone   string    `json:"timezone"`
	StartTime  time.Time `json:"startTime"`
}

type BookingConfirmation struct {
	OwnerID   string    `json:"ownerId"`
	EventID   uuid.UUID `json:"eventId"`
	StartTime time.Time `json:"startTime"`
}

// CalendarBooking - данные для создания события во внешнем календаре владельца
type CalendarBooking struct {
	OwnerID           string
	EventName         string
	GuestName         string
	GuestEmail        string
	GuestNotes        string
	StartTime         time.Time
	DurationInMinutes int
}

func (b CalendarBooking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationInMinutes) * time.Minute)
}
