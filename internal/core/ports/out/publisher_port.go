package out

import "context"

type SchedulePublisherPort interface {
	// Оповещение остальных инстансов сервиса об изменении расписания владельца
	PublishScheduleChanged(ctx context.Context, ownerID string) error
}
