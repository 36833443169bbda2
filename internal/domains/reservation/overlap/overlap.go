// Package overlap holds the interval rules shared by every reservation store.
// Intervals are half-open: [start, end) never includes its end instant, so
// back-to-back reservations do not conflict.
package overlap

import (
	"easybooking/internal/domains/reservation/model"
	"time"
)

// ValidateInterval fails with ErrInvalidInterval unless end is strictly after start.
func ValidateInterval(start, end time.Time) error {
	if !end.After(start) {
		return model.ErrInvalidInterval // nolint:wrapcheck
	}

	return nil
}

// Overlaps reports whether [s1, e1) and [s2, e2) intersect.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// FindConflict returns the first reservation in existing that holds its slot and
// overlaps [start, end). The reservation with id excludeID is ignored.
func FindConflict(existing []model.Reservation, start, end time.Time, excludeID string) (model.Reservation, bool) {
	for _, reservation := range existing {
		if excludeID != "" && reservation.ID == excludeID {
			continue
		}

		if !reservation.HoldsSlot() {
			continue
		}

		if Overlaps(reservation.StartTime, reservation.EndTime, start, end) {
			return reservation, true
		}
	}

	return model.Reservation{}, false
}

// IsAvailable reports whether no reservation in existing conflicts with [start, end).
func IsAvailable(existing []model.Reservation, start, end time.Time, excludeID string) bool {
	_, found := FindConflict(existing, start, end, excludeID)

	return !found
}
