package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"easybooking/infras/otel"
	"easybooking/internal/domains/room/model"
	"easybooking/internal/domains/room/repository"
	"easybooking/internal/domains/room/seed"
	"easybooking/shared/constant"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

// Room is the read-only room catalog.
type Room interface {
	Get(ctx context.Context, id string) (model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
}

type serviceImpl struct {
	rooms []model.Room
	byID  map[string]model.Room
	otel  otel.Otel
}

// New loads the built-in catalog, persists it through repo and serves it from memory.
func New(repo repository.Room, otel otel.Otel) Room {
	rooms, err := seed.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load room catalog")
	}

	svc, err := Load(context.Background(), repo, otel, rooms)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sync room catalog")
	}

	return svc
}

// Load persists rooms through repo and returns a catalog serving them.
func Load(ctx context.Context, repo repository.Room, otel otel.Otel, rooms []model.Room) (Room, error) {
	if err := repo.Sync(ctx, rooms); err != nil {
		return nil, fmt.Errorf("failed to sync room catalog: %w", err)
	}

	return NewCatalog(otel, rooms), nil
}

// NewCatalog serves rooms without touching storage.
func NewCatalog(otel otel.Otel, rooms []model.Room) Room {
	byID := make(map[string]model.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}

	return &serviceImpl{
		rooms: slices.Clone(rooms),
		byID:  byID,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (model.Room, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()

	room, ok := s.byID[id]
	if !ok {
		return model.Room{}, model.ErrRoomNotFound // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) List(ctx context.Context) ([]model.Room, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()

	return slices.Clone(s.rooms), nil
}
