package response_test

import (
	"context"
	"easybooking/shared/failure"
	"easybooking/transport/http/response"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	conflict := failure.New(http.StatusConflict, "slot_conflict", "room already booked for this time")

	tests := []struct {
		name           string
		err            error
		wantStatus     int
		wantError      string
		wantKind       string
		wantRetryAfter string
	}{
		{
			name:       "wrapped failure keeps its message",
			err:        fmt.Errorf("failed to create reservation: %w", conflict),
			wantStatus: http.StatusConflict,
			wantError:  "room already booked for this time",
			wantKind:   "slot_conflict",
		},
		{
			name:           "unavailable sets retry after",
			err:            failure.Unavailable(context.DeadlineExceeded),
			wantStatus:     http.StatusServiceUnavailable,
			wantError:      failure.ErrStoreUnavailable.Message,
			wantKind:       failure.KindStoreUnavailable,
			wantRetryAfter: "1",
		},
		{
			name:       "plain error hides its cause",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			wantError:  http.StatusText(http.StatusInternalServerError),
			wantKind:   failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRetryAfter, rec.Header().Get("Retry-After"))
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body struct {
				Error string `json:"error"`
				Kind  string `json:"kind"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantKind, body.Kind)
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "res-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"res-1"}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
