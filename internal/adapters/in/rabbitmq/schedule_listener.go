package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

// ScheduleListener слушает сообщения об изменении расписаний и сбрасывает
// соответствующие записи кэша. Нужен при нескольких инстансах сервиса:
// сохранение на одном инстансе инвалидирует кэш остальных
type ScheduleListener struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	cachePort out.CachePort
	cfg       *config.Config
	logger    out.LoggerPort
}

type ScheduleChangedMessage struct {
	OwnerID string `json:"ownerId"`
}

func NewScheduleListener(cachePort out.CachePort, cfg *config.Config, logger out.LoggerPort) (*ScheduleListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
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

	return &ScheduleListener{
		conn:      conn,
		channel:   channel,
		cachePort: cachePort,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

func (l *ScheduleListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.ScheduleQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("rabbitmq.message.process_failed", out.LogFields{
						"error": err.Error(),
					})
					msg.Nack(false, true)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("rabbitmq.listener.started", out.LogFields{
		"queue": queue.Name,
	})

	return nil
}

func (l *ScheduleListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	var message ScheduleChangedMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		return err
	}

	l.logger.Debug("rabbitmq.schedule.changed", out.LogFields{
		"ownerId": message.OwnerID,
	})

	if l.cachePort != nil {
		l.cachePort.InvalidateSchedule(ctx, message.OwnerID)
	}

	return nil
}

func (l *ScheduleListener) Stop() error {
	if l.channel != nil {
		if err := l.channel.Close(); err != nil {
			return err
		}
	}
	if l.conn != nil {
		return l.conn.Close()
	}
	return nil
}
