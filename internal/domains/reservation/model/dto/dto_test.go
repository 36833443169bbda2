package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"easybooking/internal/domains/reservation/model"
	"easybooking/internal/domains/reservation/model/dto"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	now := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	req := dto.CreateReservationRequest{
		RoomID:    "room-a",
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
		PartySize: 2,
		Notes:     "projector",
	}

	res := req.ToModel("u1", model.StatusPending, now)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "u1", res.UserID)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, now, res.CreatedAt)
	assert.Equal(t, "u1", res.CreatedBy)
	assert.Equal(t, "projector", res.Notes)
}

func TestUpdateReservationRequest_Apply(t *testing.T) {
	now := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	current := model.Reservation{
		ID:        "res-1",
		StartTime: now,
		EndTime:   now.Add(time.Hour),
		PartySize: 2,
		Notes:     "keep",
	}

	newEnd := now.Add(3 * time.Hour)
	emptyNotes := ""

	tests := []struct {
		name      string
		req       dto.UpdateReservationRequest
		wantEmpty bool
		want      model.Reservation
	}{
		{
			name:      "empty patch",
			req:       dto.UpdateReservationRequest{},
			wantEmpty: true,
			want:      current,
		},
		{
			name: "end time only",
			req:  dto.UpdateReservationRequest{EndTime: &newEnd},
			want: model.Reservation{ID: "res-1", StartTime: now, EndTime: newEnd, PartySize: 2, Notes: "keep"},
		},
		{
			name: "clear notes",
			req:  dto.UpdateReservationRequest{Notes: &emptyNotes},
			want: model.Reservation{ID: "res-1", StartTime: now, EndTime: now.Add(time.Hour), PartySize: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEmpty, tt.req.IsEmpty())
			assert.Equal(t, tt.want, tt.req.Apply(current))
		})
	}
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	res := dto.GetReservationsResponse{}
	res.FromModels([]model.Reservation{{ID: "a"}, {ID: "b"}})

	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "a", res.Reservations[0].ID)

	empty := dto.GetReservationsResponse{}
	empty.FromModels(nil)

	assert.NotNil(t, empty.Reservations)
	assert.Zero(t, empty.TotalData)
}
