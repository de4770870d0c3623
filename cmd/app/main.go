package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/booking-slots-resolver/internal/adapters/in/http"
	"github.com/suchimauz/booking-slots-resolver/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/booking-slots-resolver/internal/adapters/out/cache"
	"github.com/suchimauz/booking-slots-resolver/internal/adapters/out/gcalendar"
	"github.com/suchimauz/booking-slots-resolver/internal/adapters/out/logger"
	"github.com/suchimauz/booking-slots-resolver/internal/adapters/out/postgres"
	outrabbitmq "github.com/suchimauz/booking-slots-resolver/internal/adapters/out/rabbitmq"
	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
	"github.com/suchimauz/booking-slots-resolver/internal/core/services/booking_service"
	"github.com/suchimauz/booking-slots-resolver/internal/core/services/event_service"
	"github.com/suchimauz/booking-slots-resolver/internal/core/services/schedule_service"
	"github.com/suchimauz/booking-slots-resolver/internal/core/services/slot_resolver_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация адаптеров
	postgresAdapter, err := postgres.NewPostgresAdapter(ctx, cfg, mainLogger.WithModule("PostgresAdapter"))
	if err != nil {
		log.Error("app.postgres.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer postgresAdapter.Close()

	calendarAdapter, err := gcalendar.NewGCalendarAdapter(ctx, cfg, mainLogger.WithModule("GCalendarAdapter"))
	if err != nil {
		log.Error("app.gcalendar.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		lruAdapter, err := cache.NewLRUCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = lruAdapter
	}

	// Публикация изменений расписаний для остальных инстансов
	var schedulePublisher out.SchedulePublisherPort
	if cfg.RabbitMq.Enabled {
		publisher, err := outrabbitmq.NewSchedulePublisher(cfg, mainLogger.WithModule("RabbitMQPublisher"))
		if err != nil {
			log.Error("app.rabbitmq.publisher_init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		schedulePublisher = publisher

		defer func() {
			if err := publisher.Stop(); err != nil {
				log.Error("app.rabbitmq.publisher_stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	// Инициализация сервисов
	scheduleService := schedule_service.NewScheduleService(postgresAdapter, cacheAdapter, schedulePublisher, mainLogger, cfg)
	slotResolverService := slot_resolver_service.NewSlotResolverService(
		postgresAdapter,
		calendarAdapter,
		cacheAdapter,
		mainLogger,
		cfg,
	)
	eventService := event_service.NewEventService(postgresAdapter, mainLogger)
	bookingService := booking_service.NewBookingService(
		postgresAdapter,
		calendarAdapter,
		slotResolverService,
		mainLogger,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	http.NewScheduleController(scheduleService, slotResolverService, cfg).RegisterRoutes(router)
	http.NewEventController(eventService, cfg).RegisterRoutes(router)
	http.NewBookingController(bookingService, cfg).RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMq.Enabled {
		listener, err := rabbitmq.NewScheduleListener(
			cacheAdapter,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
