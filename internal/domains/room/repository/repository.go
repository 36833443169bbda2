package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"easybooking/config"
	"easybooking/infras/otel"
	"easybooking/infras/postgres"
	"easybooking/internal/domains/room/model"
	"easybooking/shared/constant"
	gRepo "easybooking/shared/repository"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Room interface {
	// Sync makes the persisted catalog match rooms, keyed by room id.
	Sync(ctx context.Context, rooms []model.Room) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

// New returns the room repository for the configured driver.
func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Room {
	if cfg.DB.Driver == config.DBDriverMemory {
		return &memoryImpl{}
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Sync(ctx context.Context, rooms []model.Room) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Sync")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, room := range rooms {
			if err := r.UpsertTx(ctx, tx, room, model.FieldID); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to sync rooms: %w", err)
	}

	log.Info().Int("rooms", len(rooms)).Msg("Room catalog synced")

	return nil
}

type memoryImpl struct{}

func (m *memoryImpl) Sync(_ context.Context, _ []model.Room) error {
	return nil
}
