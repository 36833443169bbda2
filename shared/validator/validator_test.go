package validator_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easybooking/internal/domains/reservation/model/dto"
	"easybooking/shared/failure"
	"easybooking/shared/validator"
)

func TestValidate_CreateReservationRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid request",
			body: `{"room_id":"mars","start_time":"2030-01-01T10:00:00Z","end_time":"2030-01-01T12:00:00Z","party_size":2}`,
		},
		{
			name:    "missing room",
			body:    `{"start_time":"2030-01-01T10:00:00Z","end_time":"2030-01-01T12:00:00Z","party_size":2}`,
			wantErr: "RoomID is required",
		},
		{
			name:    "missing end time",
			body:    `{"room_id":"mars","start_time":"2030-01-01T10:00:00Z"}`,
			wantErr: "EndTime is required",
		},
		{
			name:    "notes too long",
			body:    `{"room_id":"mars","start_time":"2030-01-01T10:00:00Z","end_time":"2030-01-01T12:00:00Z","notes":"` + strings.Repeat("n", 501) + `"}`,
			wantErr: "Notes must be less than or equal to 500",
		},
		{
			name:    "time without offset",
			body:    `{"room_id":"mars","start_time":"2030-01-01 10:00","end_time":"2030-01-01T12:00:00Z"}`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "malformed json",
			body:    `{"room_id":`,
			wantErr: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreateReservationRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "mars", req.RoomID)
				assert.Equal(t, 2*time.Hour, req.EndTime.Sub(req.StartTime))

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, failure.KindBadRequest, failure.GetKind(err))
		})
	}
}

func TestValidate_UpdateReservationRequest(t *testing.T) {
	var req dto.UpdateReservationRequest

	require.NoError(t, validator.Validate(strings.NewReader(`{}`), &req))
	assert.True(t, req.IsEmpty())

	require.NoError(t, validator.Validate(strings.NewReader(`{"party_size":3}`), &req))
	require.NotNil(t, req.PartySize)
	assert.Equal(t, 3, *req.PartySize)

	err := validator.Validate(strings.NewReader(`{"notes":"`+strings.Repeat("n", 501)+`"}`), &req)
	assert.Equal(t, failure.KindBadRequest, failure.GetKind(err))
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr string
	}{
		{name: "utc timestamp", field: "2030-01-01T10:00:00Z", tag: "timestamp"},
		{name: "offset timestamp", field: "2030-01-01T10:00:00+07:00", tag: "timestamp"},
		{name: "date only", field: "2030-01-01", tag: "timestamp", wantErr: "must be an RFC3339 timestamp"},
		{name: "reservation id", field: "3f1c2d0e-8c5b-4b8e-9a51-2f8f6c0e9d11", tag: "uuid"},
		{name: "malformed reservation id", field: "abc", tag: "uuid", wantErr: "must be a valid UUID"},
		{name: "party size in range", field: 4, tag: "gte=1,lte=4"},
		{name: "party size too large", field: 5, tag: "gte=1,lte=4", wantErr: "must be less than or equal to 4"},
		{name: "status", field: "pending", tag: "oneof=pending confirmed"},
		{name: "unknown status", field: "archived", tag: "oneof=pending confirmed", wantErr: "must be one of pending confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
