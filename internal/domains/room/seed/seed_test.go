package seed_test

import (
	"easybooking/internal/domains/room/seed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	rooms, err := seed.Default()
	require.NoError(t, err)
	require.Len(t, rooms, 9)

	assert.Equal(t, "Mercure", rooms[0].Name)
	assert.Equal(t, 1, rooms[0].Capacity)
	assert.Equal(t, "Pluton", rooms[8].Name)
	assert.Equal(t, 4, rooms[8].Capacity)

	ids := map[string]struct{}{}
	for _, room := range rooms {
		assert.Equal(t, seed.RoomID(room.Name), room.ID)
		ids[room.ID] = struct{}{}
	}

	assert.Len(t, ids, 9)
}

func TestRoomID_Deterministic(t *testing.T) {
	assert.Equal(t, seed.RoomID("Mars"), seed.RoomID("Mars"))
	assert.NotEqual(t, seed.RoomID("Mars"), seed.RoomID("Terre"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		wantLen int
	}{
		{
			name:    "sorted by floor and number",
			data:    "- {name: B, floor: 2, number: 1, capacity: 2}\n- {name: A, floor: 1, number: 2, capacity: 1}\n",
			wantLen: 2,
		},
		{
			name:    "empty catalog",
			data:    "[]",
			wantErr: seed.ErrEmptyCatalog,
		},
		{
			name:    "duplicate name",
			data:    "- {name: A, floor: 1, number: 1, capacity: 1}\n- {name: A, floor: 1, number: 2, capacity: 1}\n",
			wantErr: seed.ErrDuplicateRoom,
		},
		{
			name:    "duplicate position",
			data:    "- {name: A, floor: 1, number: 1, capacity: 1}\n- {name: B, floor: 1, number: 1, capacity: 1}\n",
			wantErr: seed.ErrDuplicateRoom,
		},
		{
			name:    "capacity outside tiers",
			data:    "- {name: A, floor: 1, number: 1, capacity: 3}\n",
			wantErr: seed.ErrInvalidRoomField,
		},
		{
			name:    "floor out of range",
			data:    "- {name: A, floor: 4, number: 1, capacity: 1}\n",
			wantErr: seed.ErrInvalidRoomField,
		},
		{
			name:    "missing name",
			data:    "- {floor: 1, number: 1, capacity: 1}\n",
			wantErr: seed.ErrInvalidRoomField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms, err := seed.Parse([]byte(tt.data))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Len(t, rooms, tt.wantLen)
			assert.Equal(t, "A", rooms[0].Name)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := seed.Parse([]byte("name: [unterminated"))
	assert.Error(t, err)
}
