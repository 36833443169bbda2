package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"easybooking/internal/domains/reservation/model"
	roomModel "easybooking/internal/domains/room/model"
	"easybooking/shared/constant"
	"easybooking/shared/failure"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var transientClasses = []string{
	constant.PqErrorClassConnection,
	constant.PqErrorClassTxRollback,
	constant.PqErrorClassInsufficientRes,
	constant.PqErrorClassOperatorIntervene,
}

// translateError maps storage errors onto reservation failures. Domain failures pass
// through untouched, transient storage errors become retryable.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return failure.Unavailable(err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case string(pqErr.Code) == constant.PqErrorCodeExclusionViolation:
			return model.ErrSlotConflict
		case string(pqErr.Code) == constant.PqErrorCodeFkViolation:
			return roomModel.ErrRoomNotFound
		case string(pqErr.Code) == constant.PqErrorCodeInvalidTextRep:
			// reservation ids are UUIDs, a malformed one cannot name a row
			return model.ErrNotFound
		case string(pqErr.Code) == constant.PqErrorCodeLockNotAvailable:
			return failure.Unavailable(err)
		case isTransientClass(string(pqErr.Code)):
			return failure.Unavailable(err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return failure.Unavailable(err)
	}

	log.Error().Err(err).Msg("unexpected reservation store error")

	return fmt.Errorf("reservation store: %w", err)
}

func isTransientClass(code string) bool {
	for _, class := range transientClasses {
		if strings.HasPrefix(code, class) {
			return true
		}
	}

	return false
}
