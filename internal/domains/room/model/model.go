package model

import (
	"easybooking/shared/failure"
	"easybooking/shared/model"
	"net/http"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldFloor    = "floor"
	FieldNumber   = "number"
	FieldCapacity = "capacity"
)

const KindRoomNotFound = "room_not_found"

var ErrRoomNotFound = failure.New(http.StatusNotFound, KindRoomNotFound, "room not found")

// Capacities lists the seating tiers a room may have.
var Capacities = []int{1, 2, 4}

type Room struct {
	ID          string         `db:"id"          yaml:"-"`
	Name        string         `db:"name"        yaml:"name"`
	Floor       int            `db:"floor"       yaml:"floor"`
	Number      int            `db:"number"      yaml:"number"`
	Capacity    int            `db:"capacity"    yaml:"capacity"`
	Description string         `db:"description" yaml:"description"`
	Amenities   pq.StringArray `db:"amenities"   yaml:"amenities"`
	model.Metadata
}

// Fits reports whether a party of the given size can be seated.
func (r Room) Fits(partySize int) bool {
	return partySize <= r.Capacity
}
