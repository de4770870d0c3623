package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

func (a *PostgresAdapter) CreateEvent(ctx context.Context, event domain.Event) (*domain.Event, error) {
	err := a.pool.QueryRow(ctx, `
		INSERT INTO events (owner_id, name, description, duration_in_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, event.OwnerID, event.Name, event.Description, event.DurationInMinutes, event.IsActive).Scan(
		&event.ID,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		a.logger.Error("postgres.events.insert_failed", out.LogFields{
			"ownerId": event.OwnerID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &event, nil
}

// UpdateEvent обновляет событие в границах владельца,
// false - событие не найдено или принадлежит другому владельцу
func (a *PostgresAdapter) UpdateEvent(ctx context.Context, event domain.Event) (bool, error) {
	tag, err := a.pool.Exec(ctx, `
		UPDATE events
		SET name = $3,
			description = $4,
			duration_in_minutes = $5,
			is_active = $6,
			updated_at = now()
		WHERE id = $1 AND owner_id = $2
	`, event.ID, event.OwnerID, event.Name, event.Description, event.DurationInMinutes, event.IsActive)
	if err != nil {
		a.logger.Error("postgres.events.update_failed", out.LogFields{
			"ownerId": event.OwnerID,
			"eventId": event.ID,
			"error":   err.Error(),
		})
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (a *PostgresAdapter) DeleteEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (bool, error) {
	tag, err := a.pool.Exec(ctx, `
		DELETE FROM events WHERE id = $1 AND owner_id = $2
	`, eventID, ownerID)
	if err != nil {
		a.logger.Error("postgres.events.delete_failed", out.LogFields{
			"ownerId": ownerID,
			"eventId": eventID,
			"error":   err.Error(),
		})
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (a *PostgresAdapter) GetEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error) {
	return a.getEvent(ctx, `
		SELECT id, owner_id, name, description, duration_in_minutes, is_active, created_at, updated_at
		FROM events
		WHERE id = $1 AND owner_id = $2
	`, ownerID, eventID)
}

func (a *PostgresAdapter) GetActiveEvent(ctx context.Context, ownerID string, eventID uuid.UUID) (*domain.Event, error) {
	return a.getEvent(ctx, `
		SELECT id, owner_id, name, description, duration_in_minutes, is_active, created_at, updated_at
		FROM events
		WHERE id = $1 AND owner_id = $2 AND is_active
	`, ownerID, eventID)
}

func (a *PostgresAdapter) getEvent(ctx context.Context, query string, ownerID string, eventID uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	err := a.pool.QueryRow(ctx, query, eventID, ownerID).Scan(
		&event.ID,
		&event.OwnerID,
		&event.Name,
		&event.Description,
		&event.DurationInMinutes,
		&event.IsActive,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (a *PostgresAdapter) ListEvents(ctx context.Context, ownerID string, onlyActive bool) ([]domain.Event, error) {
	query := `
		SELECT id, owner_id, name, description, duration_in_minutes, is_active, created_at, updated_at
		FROM events
		WHERE owner_id = $1
		ORDER BY lower(name) ASC
	`
	if onlyActive {
		query = `
			SELECT id, owner_id, name, description, duration_in_minutes, is_active, created_at, updated_at
			FROM events
			WHERE owner_id = $1 AND is_active
			ORDER BY lower(name) ASC
		`
	}

	rows, err := a.pool.Query(ctx, query, ownerID)
	if err != nil {
		a.logger.Error("postgres.events.list_failed", out.LogFields{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.OwnerID,
			&event.Name,
			&event.Description,
			&event.DurationInMinutes,
			&event.IsActive,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
