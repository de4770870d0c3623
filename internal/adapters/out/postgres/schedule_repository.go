package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

// GetSchedule возвращает расписание владельца вместе с правилами доступности,
// nil без ошибки, если расписание еще не сохранялось
func (a *PostgresAdapter) GetSchedule(ctx context.Context, ownerID string) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := a.pool.QueryRow(ctx, `
		SELECT id, owner_id, timezone, created_at, updated_at
		FROM schedules
		WHERE owner_id = $1
	`, ownerID).Scan(
		&schedule.ID,
		&schedule.OwnerID,
		&schedule.Timezone,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		a.logger.Error("postgres.schedule.fetch_failed", out.LogFields{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, err
	}

	rows, err := a.pool.Query(ctx, `
		SELECT id, day_of_week, start_time, end_time
		FROM schedule_availabilities
		WHERE schedule_id = $1
		ORDER BY day_of_week, start_time
	`, schedule.ID)
	if err != nil {
		a.logger.Error("postgres.schedule.rules.fetch_failed", out.LogFields{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, err
	}
	defer rows.Close()

	schedule.Rules = make([]domain.AvailabilityRule, 0)
	for rows.Next() {
		var rule domain.AvailabilityRule
		if err := rows.Scan(&rule.ID, &rule.DayOfWeek, &rule.StartTime, &rule.EndTime); err != nil {
			return nil, err
		}
		schedule.Rules = append(schedule.Rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &schedule, nil
}

// ReplaceSchedule заменяет расписание владельца целиком:
// upsert строки расписания, удаление старых правил и вставка новых
// выполняются одной транзакцией, чтобы читатели не видели смесь версий
func (a *PostgresAdapter) ReplaceSchedule(ctx context.Context, ownerID string, timezone string, rules []domain.AvailabilityRule) (*domain.Schedule, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var schedule domain.Schedule
	err = tx.QueryRow(ctx, `
		INSERT INTO schedules (owner_id, timezone)
		VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE
		SET timezone = EXCLUDED.timezone,
			updated_at = now()
		RETURNING id, owner_id, timezone, created_at, updated_at
	`, ownerID, timezone).Scan(
		&schedule.ID,
		&schedule.OwnerID,
		&schedule.Timezone,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		a.logger.Error("postgres.schedule.upsert_failed", out.LogFields{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM schedule_availabilities WHERE schedule_id = $1
	`, schedule.ID); err != nil {
		return nil, err
	}

	if len(rules) > 0 {
		batch := &pgx.Batch{}
		for _, rule := range rules {
			batch.Queue(`
				INSERT INTO schedule_availabilities (schedule_id, day_of_week, start_time, end_time)
				VALUES ($1, $2, $3, $4)
			`, schedule.ID, rule.DayOfWeek, rule.StartTime, rule.EndTime)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			a.logger.Error("postgres.schedule.rules.insert_failed", out.LogFields{
				"ownerId": ownerID,
				"error":   err.Error(),
			})
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	schedule.Rules = rules

	a.logger.Debug("postgres.schedule.replaced", out.LogFields{
		"ownerId": ownerID,
		"rules":   len(rules),
	})

	return &schedule, nil
}
