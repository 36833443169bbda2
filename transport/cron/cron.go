package cron

import (
	"context"
	"easybooking/config"
	"easybooking/infras/otel"
	"easybooking/internal/domains/reservation/service"
	"easybooking/shared/constant"
	"easybooking/shared/timezone"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Cron runs the background jobs of the service. The only job flips ended
// reservations to completed.
type Cron struct {
	config       *config.Config
	reservations service.Reservation
	otel         otel.Otel
	scheduler    *cron.Cron
}

func New(cfg *config.Config, reservations service.Reservation, otel otel.Otel) *Cron {
	return &Cron{
		config:       cfg,
		reservations: reservations,
		otel:         otel,
		scheduler: cron.New(
			cron.WithLocation(timezone.GetLocation()),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}
}

// Start registers the jobs and starts the scheduler. It is a no-op when the
// sweep is disabled.
func (c *Cron) Start() error {
	sweep := c.config.Reservation.Sweep
	if !sweep.Enable {
		log.Info().Msg("Reservation completion sweep disabled")

		return nil
	}

	if _, err := c.scheduler.AddFunc(sweep.Schedule, c.CompleteExpired); err != nil {
		return fmt.Errorf("failed to schedule completion sweep %q: %w", sweep.Schedule, err)
	}

	c.scheduler.Start()

	log.Info().Str("schedule", sweep.Schedule).Msg("Reservation completion sweep started")

	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (c *Cron) Stop(ctx context.Context) {
	select {
	case <-c.scheduler.Stop().Done():
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Msg("Completion sweep still running at shutdown")
	}
}

func (c *Cron) CompleteExpired() {
	ctx, scope := c.otel.NewScope(context.Background(), constant.OtelCronScopeName, constant.OtelCronScopeName+".CompleteExpired")
	defer scope.End()

	completed, err := c.reservations.CompleteExpired(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete ended reservations")

		return
	}

	scope.SetAttribute("reservations.completed", completed)

	if completed > 0 {
		log.Info().Int64("completed", completed).Msg("Completed ended reservations")
	}
}
