package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event - тип встречи, который владелец открывает для бронирования
type Event struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           string    `json:"ownerId"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	DurationInMinutes int       `json:"durationInMinutes"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
