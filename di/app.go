package di

import (
	"context"
	"easybooking/infras/kafka"
	"easybooking/infras/postgres"
	"easybooking/internal/domains/reservation/event"
	"easybooking/transport/cron"
	"easybooking/transport/http"
	"errors"
	"fmt"
)

// Application is the wired service with the resources it owns.
type Application struct {
	HTTP   *http.HTTP
	Cron   *cron.Cron
	Events *event.Dispatcher
	DB     *postgres.Connection
	Kafka  kafka.Client
}

// Close stops background jobs and waits for queued events, then releases the event
// writers and the database.
func (a *Application) Close(ctx context.Context) error {
	a.Cron.Stop(ctx)

	var errs []error

	if err := a.Events.Drain(ctx); err != nil {
		errs = append(errs, fmt.Errorf("drain events: %w", err))
	}

	if err := a.Kafka.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close kafka: %w", err))
	}

	if err := a.DB.Close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
