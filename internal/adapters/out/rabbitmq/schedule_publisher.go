package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

// SchedulePublisher шлет сообщения об изменении расписаний в очередь,
// которую слушают остальные инстансы сервиса: локальная инвалидация кэша
// на сохранившем инстансе до других не доходит
type SchedulePublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     *config.Config
	logger  out.LoggerPort
}

type scheduleChangedMessage struct {
	OwnerID string `json:"ownerId"`
}

func NewSchedulePublisher(cfg *config.Config, logger out.LoggerPort) (*SchedulePublisher, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, publisher will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	// Объявление очереди идемпотентно, параметры совпадают со слушателем
	if _, err := channel.QueueDeclare(
		cfg.RabbitMq.ScheduleQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		channel.Close()
		conn.Close()
		logger.Error("rabbitmq.queue.declare_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &SchedulePublisher{
		conn:    conn,
		channel: channel,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (p *SchedulePublisher) PublishScheduleChanged(ctx context.Context, ownerID string) error {
	body, err := json.Marshal(scheduleChangedMessage{OwnerID: ownerID})
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx,
		"",                           // exchange
		p.cfg.RabbitMq.ScheduleQueue, // routing key
		false,                        // mandatory
		false,                        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		p.logger.Error("rabbitmq.schedule.publish_failed", out.LogFields{
			"ownerId": ownerID,
			"error":   err.Error(),
		})
		return err
	}

	p.logger.Debug("rabbitmq.schedule.published", out.LogFields{
		"ownerId": ownerID,
	})

	return nil
}

func (p *SchedulePublisher) Stop() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
