package repository

import (
	"context"
	"easybooking/infras/otel"
	"easybooking/infras/postgres"
	"easybooking/internal/domains/reservation/model"
	"easybooking/internal/domains/reservation/overlap"
	"easybooking/shared"
	"easybooking/shared/constant"
	gDto "easybooking/shared/dto"
	gRepo "easybooking/shared/repository"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// advisoryLockNamespace scopes the per-room advisory locks taken by this store.
const advisoryLockNamespace = 7301

const (
	argWindowStart = "window_start"
	argWindowEnd   = "window_end"
	argExcludeID   = "exclude_id"
)

type changeSet struct {
	StartTime time.Time    `db:"start_time"`
	EndTime   time.Time    `db:"end_time"`
	PartySize int          `db:"party_size"`
	Notes     *string      `db:"notes"`
	Status    model.Status `db:"status"`
}

type postgresImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Reservation {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *postgresImpl) Create(ctx context.Context, reservation model.Reservation) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.lockRoom(ctx, tx, reservation.RoomID); err != nil {
			return err
		}

		if err := r.checkConflict(ctx, tx, reservation.RoomID, reservation.StartTime, reservation.EndTime, constant.Empty); err != nil {
			return err
		}

		return r.InsertTx(ctx, tx, reservation) //nolint:wrapcheck
	})

	return translateError(err)
}

func (r *postgresImpl) Update(ctx context.Context, id string, mutate Mutator) (res model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.mutate(ctx, id, mutate, true)
}

func (r *postgresImpl) Cancel(ctx context.Context, id string, mutate Mutator) (res model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.mutate(ctx, id, mutate, false)
}

// mutate locks the row, applies fn and writes the changed columns. With checkSlot set, a
// changed interval is re-validated against the room while holding the room lock.
func (r *postgresImpl) mutate(ctx context.Context, id string, fn Mutator, checkSlot bool) (model.Reservation, error) {
	var res model.Reservation

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := r.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return model.ErrNotFound
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		fields := changes(current, next)
		if fields == nil {
			res = current

			return nil
		}

		if checkSlot && next.HoldsSlot() && intervalChanged(current, next) {
			if err := r.lockRoom(ctx, tx, current.RoomID); err != nil {
				return err
			}

			if err := r.checkConflict(ctx, tx, current.RoomID, next.StartTime, next.EndTime, current.ID); err != nil {
				return err
			}
		}

		if _, err := r.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err //nolint:wrapcheck
		}

		res = next

		return nil
	})
	if err != nil {
		return model.Reservation{}, translateError(err)
	}

	return res, nil
}

func (r *postgresImpl) Get(ctx context.Context, id string) (res model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, translateError(err)
	}

	if res.ID == constant.Empty {
		return res, model.ErrNotFound // nolint:wrapcheck
	}

	return res, nil
}

func (r *postgresImpl) ListByUser(ctx context.Context, userID string) (res []model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ListByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	res, err = r.GetAll(ctx, params, filter)

	return res, translateError(err)
}

func (r *postgresImpl) ListOverlapping(ctx context.Context, start, end time.Time, roomIDs ...string) (res []model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.ListOverlapping")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := OverlapFilter(start, end, constant.Empty, roomIDs...)

	candidates, err := r.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, translateError(err)
	}

	res = make([]model.Reservation, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.HoldsSlot() && overlap.Overlaps(candidate.StartTime, candidate.EndTime, start, end) {
			res = append(res, candidate)
		}
	}

	return res, nil
}

func (r *postgresImpl) CompleteEnded(ctx context.Context, now time.Time) (res int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.CompleteEnded")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields := map[string]any{
		model.FieldStatus:        model.StatusCompleted,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: model.SystemUser,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				ArgName:  "active_status",
				Value:    model.ActiveStatuses,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndTime,
				ArgName:  "ended_before",
				Value:    now,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}

	res, err = r.Repository.Update(ctx, fields, filter)

	return res, translateError(err)
}

func (r *postgresImpl) lockRoom(ctx context.Context, tx *sqlx.Tx, roomID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.lockRoom")
	defer scope.End()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1, hashtext($2))", advisoryLockNamespace, roomID); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to lock room %s: %w", roomID, err)
	}

	return nil
}

func (r *postgresImpl) checkConflict(ctx context.Context, tx *sqlx.Tx, roomID string, start, end time.Time, excludeID string) error {
	candidates, err := r.GetAllTx(ctx, tx, gDto.QueryParams{}, OverlapFilter(start, end, excludeID, roomID))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if _, found := overlap.FindConflict(candidates, start, end, excludeID); found {
		return model.ErrSlotConflict
	}

	return nil
}

// OverlapFilter selects non-cancelled reservations intersecting [start, end), optionally
// restricted to roomIDs and excluding one reservation.
func OverlapFilter(start, end time.Time, excludeID string, roomIDs ...string) gDto.FilterGroup {
	filters := []any{}

	switch len(roomIDs) {
	case 0:
	case 1:
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    roomIDs[0],
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	default:
		filters = append(filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    roomIDs,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	}

	filters = append(filters,
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.StatusCancelled,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStartTime,
			ArgName:  argWindowEnd,
			Value:    end,
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldEndTime,
			ArgName:  argWindowStart,
			Value:    start,
			Operator: gDto.FilterOperatorGreater,
			Table:    model.TableName,
		},
	)

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			ArgName:  argExcludeID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

// changes returns the columns that differ between current and next, or nil when
// nothing the store persists has changed.
func changes(current, next model.Reservation) map[string]any {
	set := changeSet{}

	if !next.StartTime.Equal(current.StartTime) {
		set.StartTime = next.StartTime
	}

	if !next.EndTime.Equal(current.EndTime) {
		set.EndTime = next.EndTime
	}

	if next.PartySize != current.PartySize {
		set.PartySize = next.PartySize
	}

	if next.Notes != current.Notes {
		set.Notes = &next.Notes
	}

	if next.Status != current.Status {
		set.Status = next.Status
	}

	if set == (changeSet{}) {
		return nil
	}

	fields := shared.TransformFields(set, next.ModifiedBy)
	fields[constant.FieldModifiedAt] = next.ModifiedAt

	return fields
}

func intervalChanged(current, next model.Reservation) bool {
	return !next.StartTime.Equal(current.StartTime) || !next.EndTime.Equal(current.EndTime)
}
