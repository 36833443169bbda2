package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"easybooking/config"
	"easybooking/infras/otel"
	"easybooking/internal/domains/reservation/event"
	"easybooking/internal/domains/reservation/model"
	"easybooking/internal/domains/reservation/model/dto"
	"easybooking/internal/domains/reservation/overlap"
	"easybooking/internal/domains/reservation/repository"
	roomModel "easybooking/internal/domains/room/model"
	roomService "easybooking/internal/domains/room/service"
	"easybooking/shared/constant"
	"easybooking/shared/failure"
	"easybooking/shared/metrics"
	"easybooking/shared/timezone"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultStoreTimeout = 5 * time.Second

const (
	operationCreate   = "create"
	operationUpdate   = "update"
	operationCancel   = "cancel"
	operationGet      = "get"
	operationList     = "list"
	operationCheck    = "check_availability"
	operationSearch   = "available_rooms"
	operationComplete = "complete_expired"
)

const (
	attrReservationID = "reservation.id"
	attrRoomID        = "room.id"
	attrStart         = "reservation.start"
	attrEnd           = "reservation.end"
	attrPartySize     = "reservation.party_size"
	attrResult        = "reservation.result"
	attrAvailable     = "room.available"
	attrCompleted     = "reservations.completed"
)

// Reservation is the reservation lifecycle. Every method receives the id of the
// authenticated caller where ownership matters.
type Reservation interface {
	Create(ctx context.Context, userID string, req dto.CreateReservationRequest) (model.Reservation, error)
	Get(ctx context.Context, userID, id string) (model.Reservation, error)
	ListForUser(ctx context.Context, userID string) ([]model.Reservation, error)
	Update(ctx context.Context, userID, id string, req dto.UpdateReservationRequest) (model.Reservation, error)
	Cancel(ctx context.Context, userID, id string) (model.Reservation, error)
	CheckAvailability(ctx context.Context, roomID string, start, end time.Time) (bool, error)
	AvailableRooms(ctx context.Context, start, end time.Time, partySize int) ([]roomModel.Room, error)
	CompleteExpired(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo      repository.Reservation
	rooms     roomService.Room
	publisher event.Publisher
	metrics   metrics.Metrics
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Reservation, rooms roomService.Room, publisher event.Publisher, metrics metrics.Metrics, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		publisher: publisher,
		metrics:   metrics,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateReservationRequest) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { s.observe(operationCreate, scope, err) }()

	scope.SetAttributes(map[string]any{
		attrRoomID:    req.RoomID,
		attrStart:     req.StartTime,
		attrEnd:       req.EndTime,
		attrPartySize: req.PartySize,
	})

	if err = overlap.ValidateInterval(req.StartTime, req.EndTime); err != nil {
		return res, err
	}

	if req.PartySize < 1 {
		return res, model.ErrInvalidPartySize // nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, req.RoomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !room.Fits(req.PartySize) {
		return res, model.ErrCapacityExceeded // nolint:wrapcheck
	}

	reservation := req.ToModel(userID, s.initialStatus(), timezone.Now())

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	if err = s.repo.Create(storeCtx, reservation); err != nil {
		logUnexpected(err, "failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	scope.SetAttribute(attrReservationID, reservation.ID)
	s.publish(ctx, event.TypeCreated, reservation)

	return reservation, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, id string) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { s.observe(operationGet, scope, err) }()

	scope.SetAttribute(attrReservationID, id)

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	res, err = s.repo.Get(storeCtx, id)
	if err != nil {
		logUnexpected(err, "failed to get reservation")

		return model.Reservation{}, fmt.Errorf("failed to get reservation: %w", err)
	}

	if !res.OwnedBy(userID) {
		return model.Reservation{}, model.ErrForbidden // nolint:wrapcheck
	}

	res.Status = res.StatusAt(timezone.Now())

	return res, nil
}

func (s *serviceImpl) ListForUser(ctx context.Context, userID string) (res []model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForUser")
	defer scope.End()
	defer func() { s.observe(operationList, scope, err) }()

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	res, err = s.repo.ListByUser(storeCtx, userID)
	if err != nil {
		logUnexpected(err, "failed to list reservations")

		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	now := timezone.Now()
	for i := range res {
		res[i].Status = res[i].StatusAt(now)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, userID, id string, req dto.UpdateReservationRequest) (res model.Reservation, err error) {
	if req.IsEmpty() {
		res, err = s.Get(ctx, userID, id)
		if err != nil {
			return model.Reservation{}, err
		}

		if res.Status.IsTerminal() {
			return model.Reservation{}, model.ErrReservationTerminal // nolint:wrapcheck
		}

		return res, nil
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { s.observe(operationUpdate, scope, err) }()

	scope.SetAttribute(attrReservationID, id)

	now := timezone.Now()

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	res, err = s.repo.Update(storeCtx, id, func(current model.Reservation) (model.Reservation, error) {
		if !current.OwnedBy(userID) {
			return current, model.ErrForbidden
		}

		if current.StatusAt(now).IsTerminal() {
			return current, model.ErrReservationTerminal
		}

		next := req.Apply(current)

		if err := overlap.ValidateInterval(next.StartTime, next.EndTime); err != nil {
			return current, err
		}

		if next.PartySize < 1 {
			return current, model.ErrInvalidPartySize
		}

		room, err := s.rooms.Get(ctx, current.RoomID)
		if err != nil {
			return current, err //nolint:wrapcheck
		}

		if !room.Fits(next.PartySize) {
			return current, model.ErrCapacityExceeded
		}

		next.ModifiedAt = now
		next.ModifiedBy = userID

		return next, nil
	})
	if err != nil {
		logUnexpected(err, "failed to update reservation")

		return model.Reservation{}, fmt.Errorf("failed to update reservation: %w", err)
	}

	s.publish(ctx, event.TypeUpdated, res)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, userID, id string) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { s.observe(operationCancel, scope, err) }()

	scope.SetAttribute(attrReservationID, id)

	now := timezone.Now()

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	res, err = s.repo.Cancel(storeCtx, id, func(current model.Reservation) (model.Reservation, error) {
		if !current.OwnedBy(userID) {
			return current, model.ErrForbidden
		}

		if current.Status == model.StatusCancelled {
			return current, model.ErrAlreadyCancelled
		}

		if current.StatusAt(now).IsTerminal() {
			return current, model.ErrReservationTerminal
		}

		next := current
		next.Status = model.StatusCancelled
		next.ModifiedAt = now
		next.ModifiedBy = userID

		return next, nil
	})
	if err != nil {
		logUnexpected(err, "failed to cancel reservation")

		return model.Reservation{}, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	s.publish(ctx, event.TypeCancelled, res)

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID string, start, end time.Time) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { s.observe(operationCheck, scope, err) }()

	scope.SetAttributes(map[string]any{
		attrRoomID: roomID,
		attrStart:  start,
		attrEnd:    end,
	})

	if err = overlap.ValidateInterval(start, end); err != nil {
		return false, err
	}

	if _, err = s.rooms.Get(ctx, roomID); err != nil {
		return false, err //nolint:wrapcheck
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	existing, err := s.repo.ListOverlapping(storeCtx, start, end, roomID)
	if err != nil {
		logUnexpected(err, "failed to check availability")

		return false, fmt.Errorf("failed to check availability: %w", err)
	}

	available = overlap.IsAvailable(existing, start, end, constant.Empty)
	scope.SetAttribute(attrAvailable, available)

	return available, nil
}

func (s *serviceImpl) AvailableRooms(ctx context.Context, start, end time.Time, partySize int) (res []roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer func() { s.observe(operationSearch, scope, err) }()

	if err = overlap.ValidateInterval(start, end); err != nil {
		return nil, err
	}

	if partySize < 0 {
		return nil, model.ErrInvalidPartySize // nolint:wrapcheck
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	candidates := []roomModel.Room{}
	roomIDs := []string{}

	for _, room := range rooms {
		if room.Fits(max(partySize, 1)) {
			candidates = append(candidates, room)
			roomIDs = append(roomIDs, room.ID)
		}
	}

	if len(candidates) == 0 {
		return candidates, nil
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	existing, err := s.repo.ListOverlapping(storeCtx, start, end, roomIDs...)
	if err != nil {
		logUnexpected(err, "failed to search available rooms")

		return nil, fmt.Errorf("failed to search available rooms: %w", err)
	}

	byRoom := map[string][]model.Reservation{}
	for _, reservation := range existing {
		byRoom[reservation.RoomID] = append(byRoom[reservation.RoomID], reservation)
	}

	res = []roomModel.Room{}
	for _, room := range candidates {
		if overlap.IsAvailable(byRoom[room.ID], start, end, constant.Empty) {
			res = append(res, room)
		}
	}

	return res, nil
}

func (s *serviceImpl) CompleteExpired(ctx context.Context) (completed int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteExpired")
	defer scope.End()
	defer func() { s.observe(operationComplete, scope, err) }()

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	completed, err = s.repo.CompleteEnded(storeCtx, timezone.Now())
	if err != nil {
		logUnexpected(err, "failed to complete ended reservations")

		return 0, fmt.Errorf("failed to complete ended reservations: %w", err)
	}

	scope.SetAttribute(attrCompleted, completed)
	s.metrics.SweepCompleted(completed)

	return completed, nil
}

// storeContext bounds a single store call so a stalled store surfaces as a retryable failure.
func (s *serviceImpl) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(s.cfg.Reservation.StoreTimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

func (s *serviceImpl) initialStatus() model.Status {
	status := model.Status(s.cfg.Reservation.DefaultStatus)
	if !status.IsActive() {
		return model.StatusConfirmed
	}

	return status
}

func (s *serviceImpl) observe(operation string, scope otel.Scope, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = failure.GetKind(err)
		scope.TraceError(err)
	}

	scope.SetAttribute(attrResult, result)

	s.metrics.ReservationOperation(operation, result)
}

// publish never fails the operation, the reservation is already stored.
func (s *serviceImpl) publish(ctx context.Context, eventType event.Type, reservation model.Reservation) {
	if err := s.publisher.Publish(ctx, event.New(eventType, reservation, timezone.Now())); err != nil {
		log.Error().Err(err).Str("reservation", reservation.ID).Msg("failed to publish reservation event")
	}
}

// logUnexpected logs errors that are not a caller mistake.
func logUnexpected(err error, msg string) {
	if failure.GetCode(err) >= http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
	}
}
