package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"easybooking/config"
	"easybooking/infras/otel"
	"easybooking/infras/postgres"
	"easybooking/internal/domains/reservation/model"
	"time"
)

// Mutator receives the current state of a reservation while it is locked and returns
// the state to store. Returning an error aborts the write.
type Mutator func(current model.Reservation) (model.Reservation, error)

// Reservation is the durable reservation store. Create and Update check for overlaps
// and write as one step with respect to every other writer on the same room.
type Reservation interface {
	Create(ctx context.Context, reservation model.Reservation) error
	Update(ctx context.Context, id string, mutate Mutator) (model.Reservation, error)
	Cancel(ctx context.Context, id string, mutate Mutator) (model.Reservation, error)
	Get(ctx context.Context, id string) (model.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]model.Reservation, error)
	// ListOverlapping returns reservations holding a slot that intersects [start, end),
	// restricted to roomIDs when any are given.
	ListOverlapping(ctx context.Context, start, end time.Time, roomIDs ...string) ([]model.Reservation, error)
	// CompleteEnded marks active reservations that ended at or before now as completed.
	CompleteEnded(ctx context.Context, now time.Time) (int64, error)
}

// New returns the store for the configured driver.
func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Reservation {
	if cfg.DB.Driver == config.DBDriverMemory {
		return NewMemory(otel)
	}

	return NewPostgres(db, otel)
}
