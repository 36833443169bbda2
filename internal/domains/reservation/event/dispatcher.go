package event

import (
	"context"
	"easybooking/config"
	"easybooking/infras/kafka"
	"easybooking/infras/otel"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrDispatcherClosed = errors.New("event dispatcher is closed")

// Dispatcher publishes events in the background and tracks every delivery still in
// flight, so shutdown can wait for them before the transport is closed.
type Dispatcher struct {
	publisher Publisher

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

func NewDispatcher(cfg *config.Config, client kafka.Client, otel otel.Otel) *Dispatcher {
	return Wrap(NewPublisher(cfg, client, otel))
}

// Wrap dispatches through publisher.
func Wrap(publisher Publisher) *Dispatcher {
	return &Dispatcher{publisher: publisher}
}

// Publish queues event and returns at once. Delivery outlives the caller's context.
func (d *Dispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	d.inflight.Add(1)

	go func() {
		defer d.inflight.Done()

		if err := d.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
			log.Error().Err(err).Str("reservation", event.ReservationID).Str("type", string(event.Type)).Msg("failed to publish reservation event")
		}
	}()

	return nil
}

// Drain refuses new events and waits for queued ones until ctx is done.
func (d *Dispatcher) Drain(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})

	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
