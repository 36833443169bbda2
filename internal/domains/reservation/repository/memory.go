package repository

import (
	"cmp"
	"context"
	"easybooking/infras/otel"
	"easybooking/internal/domains/reservation/model"
	"easybooking/internal/domains/reservation/overlap"
	"easybooking/shared/constant"
	"easybooking/shared/failure"
	"slices"
	"sync"
	"time"
)

type memoryRecord struct {
	reservation model.Reservation
	seq         uint64
}

// memoryImpl keeps reservations in process memory. Writers on the same room are
// serialized by a per-room lock that honours context cancellation.
type memoryImpl struct {
	otel otel.Otel

	mu      sync.RWMutex
	records map[string]memoryRecord
	seq     uint64

	locksMu   sync.Mutex
	roomLocks map[string]chan struct{}
}

func NewMemory(otel otel.Otel) Reservation {
	return &memoryImpl{
		otel:      otel,
		records:   map[string]memoryRecord{},
		roomLocks: map[string]chan struct{}{},
	}
}

func (m *memoryImpl) lockRoom(ctx context.Context, roomID string) (func(), error) {
	m.locksMu.Lock()
	lock, ok := m.roomLocks[roomID]
	if !ok {
		lock = make(chan struct{}, 1)
		m.roomLocks[roomID] = lock
	}
	m.locksMu.Unlock()

	select {
	case lock <- struct{}{}:
		return func() { <-lock }, nil
	case <-ctx.Done():
		return nil, failure.Unavailable(ctx.Err())
	}
}

func (m *memoryImpl) Create(ctx context.Context, reservation model.Reservation) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.memory.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock, err := m.lockRoom(ctx, reservation.RoomID)
	if err != nil {
		return err
	}
	defer unlock()

	if !overlap.IsAvailable(m.roomReservations(reservation.RoomID), reservation.StartTime, reservation.EndTime, constant.Empty) {
		return model.ErrSlotConflict // nolint:wrapcheck
	}

	if err := ctx.Err(); err != nil {
		return failure.Unavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.records[reservation.ID] = memoryRecord{reservation: reservation, seq: m.seq}

	return nil
}

func (m *memoryImpl) Update(ctx context.Context, id string, mutate Mutator) (res model.Reservation, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.memory.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	return m.mutate(ctx, id, mutate, true)
}

func (m *memoryImpl) Cancel(ctx context.Context, id string, mutate Mutator) (res model.Reservation, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.memory.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return m.mutate(ctx, id, mutate, false)
}

func (m *memoryImpl) mutate(ctx context.Context, id string, fn Mutator, checkSlot bool) (model.Reservation, error) {
	m.mu.RLock()
	record, ok := m.records[id]
	m.mu.RUnlock()

	if !ok {
		return model.Reservation{}, model.ErrNotFound // nolint:wrapcheck
	}

	// The room of a reservation never changes, so its lock also guards the record.
	unlock, err := m.lockRoom(ctx, record.reservation.RoomID)
	if err != nil {
		return model.Reservation{}, err
	}
	defer unlock()

	m.mu.RLock()
	record = m.records[id]
	m.mu.RUnlock()

	current := record.reservation

	next, err := fn(current)
	if err != nil {
		return model.Reservation{}, err
	}

	if changes(current, next) == nil {
		return current, nil
	}

	if checkSlot && next.HoldsSlot() && intervalChanged(current, next) &&
		!overlap.IsAvailable(m.roomReservations(current.RoomID), next.StartTime, next.EndTime, current.ID) {
		return model.Reservation{}, model.ErrSlotConflict // nolint:wrapcheck
	}

	if err := ctx.Err(); err != nil {
		return model.Reservation{}, failure.Unavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next.ID = current.ID
	next.UserID = current.UserID
	next.RoomID = current.RoomID
	m.records[id] = memoryRecord{reservation: next, seq: record.seq}

	return next, nil
}

func (m *memoryImpl) Get(ctx context.Context, id string) (res model.Reservation, err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.memory.Get")
	defer scope.End()

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return res, model.ErrNotFound // nolint:wrapcheck
	}

	return record.reservation, nil
}

func (m *memoryImpl) ListByUser(ctx context.Context, userID string) ([]model.Reservation, error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.memory.ListByUser")
	defer scope.End()

	m.mu.RLock()
	records := []memoryRecord{}
	for _, record := range m.records {
		if record.reservation.UserID == userID {
			records = append(records, record)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(records, func(a, b memoryRecord) int {
		return cmp.Or(
			b.reservation.CreatedAt.Compare(a.reservation.CreatedAt),
			cmp.Compare(b.seq, a.seq),
		)
	})

	res := make([]model.Reservation, len(records))
	for i, record := range records {
		res[i] = record.reservation
	}

	return res, nil
}

func (m *memoryImpl) ListOverlapping(ctx context.Context, start, end time.Time, roomIDs ...string) ([]model.Reservation, error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.memory.ListOverlapping")
	defer scope.End()

	m.mu.RLock()
	defer m.mu.RUnlock()

	res := []model.Reservation{}
	for _, record := range m.records {
		reservation := record.reservation

		if len(roomIDs) > 0 && !slices.Contains(roomIDs, reservation.RoomID) {
			continue
		}

		if reservation.HoldsSlot() && overlap.Overlaps(reservation.StartTime, reservation.EndTime, start, end) {
			res = append(res, reservation)
		}
	}

	return res, nil
}

func (m *memoryImpl) CompleteEnded(ctx context.Context, now time.Time) (int64, error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.memory.CompleteEnded")
	defer scope.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	var completed int64
	for id, record := range m.records {
		if !record.reservation.Status.IsActive() || now.Before(record.reservation.EndTime) {
			continue
		}

		record.reservation.Status = model.StatusCompleted
		record.reservation.ModifiedAt = now
		record.reservation.ModifiedBy = model.SystemUser
		m.records[id] = record
		completed++
	}

	return completed, nil
}

// roomReservations returns every stored reservation of roomID.
func (m *memoryImpl) roomReservations(roomID string) []model.Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := []model.Reservation{}
	for _, record := range m.records {
		if record.reservation.RoomID == roomID {
			res = append(res, record.reservation)
		}
	}

	return res
}
