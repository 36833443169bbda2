package seed

import (
	"cmp"
	"easybooking/internal/domains/room/model"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	minFloor  = 1
	maxFloor  = 3
	minNumber = 1
	maxNumber = 3
)

var (
	ErrEmptyCatalog     = errors.New("room catalog is empty")
	ErrDuplicateRoom    = errors.New("duplicate room")
	ErrInvalidRoomField = errors.New("invalid room field")
)

//go:embed rooms.yaml
var defaultRooms []byte

// Default returns the built-in room catalog.
func Default() ([]model.Room, error) {
	return Parse(defaultRooms)
}

// Parse decodes a YAML room list, validates it and assigns every room a stable id
// derived from its name. Rooms are returned ordered by floor then number.
func Parse(data []byte) ([]model.Room, error) {
	var rooms []model.Room
	if err := yaml.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode room catalog: %w", err)
	}

	if len(rooms) == 0 {
		return nil, ErrEmptyCatalog
	}

	names := make(map[string]struct{}, len(rooms))
	positions := make(map[[2]int]struct{}, len(rooms))

	for i := range rooms {
		room := &rooms[i]
		room.Name = strings.TrimSpace(room.Name)

		if err := validate(*room); err != nil {
			return nil, err
		}

		if _, ok := names[room.Name]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateRoom, room.Name)
		}
		names[room.Name] = struct{}{}

		position := [2]int{room.Floor, room.Number}
		if _, ok := positions[position]; ok {
			return nil, fmt.Errorf("%w: floor %d number %d", ErrDuplicateRoom, room.Floor, room.Number)
		}
		positions[position] = struct{}{}

		room.ID = RoomID(room.Name)
	}

	slices.SortFunc(rooms, func(a, b model.Room) int {
		return cmp.Or(cmp.Compare(a.Floor, b.Floor), cmp.Compare(a.Number, b.Number))
	})

	return rooms, nil
}

// RoomID returns the deterministic id of the room with the given name.
func RoomID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("easybooking:room:"+name)).String()
}

func validate(room model.Room) error {
	switch {
	case room.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidRoomField)
	case !slices.Contains(model.Capacities, room.Capacity):
		return fmt.Errorf("%w: capacity %d of %s", ErrInvalidRoomField, room.Capacity, room.Name)
	case room.Floor < minFloor || room.Floor > maxFloor:
		return fmt.Errorf("%w: floor %d of %s", ErrInvalidRoomField, room.Floor, room.Name)
	case room.Number < minNumber || room.Number > maxNumber:
		return fmt.Errorf("%w: number %d of %s", ErrInvalidRoomField, room.Number, room.Name)
	}

	return nil
}
