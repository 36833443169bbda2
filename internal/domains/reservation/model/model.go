package model

import (
	"easybooking/shared/failure"
	"easybooking/shared/model"
	"net/http"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldRoomID    = "room_id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldStatus    = "status"
	FieldPartySize = "party_size"
	FieldNotes     = "notes"
)

const (
	KindInvalidInterval     = "invalid_interval"
	KindInvalidPartySize    = "invalid_party_size"
	KindCapacityExceeded    = "capacity_exceeded"
	KindSlotConflict        = "slot_conflict"
	KindAlreadyCancelled    = "already_cancelled"
	KindReservationTerminal = "reservation_terminal"
)

var (
	ErrInvalidInterval     = failure.New(http.StatusBadRequest, KindInvalidInterval, "end time must be after start time")
	ErrInvalidPartySize    = failure.New(http.StatusBadRequest, KindInvalidPartySize, "party size must be at least 1")
	ErrCapacityExceeded    = failure.New(http.StatusUnprocessableEntity, KindCapacityExceeded, "party size exceeds room capacity")
	ErrSlotConflict        = failure.New(http.StatusConflict, KindSlotConflict, "room is not available for this time slot")
	ErrNotFound            = failure.New(http.StatusNotFound, failure.KindNotFound, "reservation not found")
	ErrForbidden           = failure.New(http.StatusForbidden, failure.KindForbidden, "reservation belongs to another user")
	ErrAlreadyCancelled    = failure.New(http.StatusConflict, KindAlreadyCancelled, "reservation is already cancelled")
	ErrReservationTerminal = failure.New(http.StatusConflict, KindReservationTerminal, "reservation can no longer be modified")
)

// SystemUser is recorded as the modifier of changes made by background jobs.
const SystemUser = "system"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses hold their slot and can still be modified.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s.IsActive() || s.IsTerminal()
}

type Reservation struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	RoomID    string    `db:"room_id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Status    Status    `db:"status"`
	PartySize int       `db:"party_size"`
	Notes     string    `db:"notes"`
	model.Metadata
}

// StatusAt returns the status as observed at now. An active reservation whose end has
// passed is completed even before the sweep persists it.
func (r Reservation) StatusAt(now time.Time) Status {
	if r.Status.IsActive() && !now.Before(r.EndTime) {
		return StatusCompleted
	}

	return r.Status
}

// HoldsSlot reports whether r takes part in overlap checks.
func (r Reservation) HoldsSlot() bool {
	return r.Status != StatusCancelled
}

func (r Reservation) OwnedBy(userID string) bool {
	return r.UserID == userID
}
