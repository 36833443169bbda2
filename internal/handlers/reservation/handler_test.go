package reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"easybooking/infras/otel/mocks"
	reservationMocks "easybooking/internal/domains/reservation/mocks"
	"easybooking/internal/domains/reservation/model"
	"easybooking/internal/domains/reservation/model/dto"
	roomModel "easybooking/internal/domains/room/model"
	"easybooking/internal/handlers/reservation"
	"easybooking/shared/constant"
	"easybooking/shared/failure"
)

const userID = "alice"

type reservationBody struct {
	Data struct {
		ID        string `json:"id"`
		RoomID    string `json:"room_id"`
		Status    string `json:"status"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	} `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

var (
	start = time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	end   = start.Add(time.Hour)
)

func sample() model.Reservation {
	return model.Reservation{
		ID:        "res-1",
		UserID:    userID,
		RoomID:    "room-1",
		StartTime: start,
		EndTime:   end,
		Status:    model.StatusConfirmed,
		PartySize: 1,
	}
}

func newRouter(t *testing.T) (http.Handler, *reservationMocks.MockReservationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := reservationMocks.NewMockReservationService(ctrl)
	handler := reservation.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, mockService
}

func request(method, target, body, user string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if user != "" {
		req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, user))
	}

	return req
}

func TestHandler_CreateReservation(t *testing.T) {
	validBody := `{"room_id":"room-1","start_time":"2030-01-01T10:00:00Z","end_time":"2030-01-01T11:00:00Z","party_size":1}`

	tests := []struct {
		name       string
		body       string
		user       string
		setupMock  func(mockService *reservationMocks.MockReservationService)
		wantStatus int
		wantKind   string
	}{
		{
			name: "created",
			body: validBody,
			user: userID,
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().
					Create(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, req dto.CreateReservationRequest) (model.Reservation, error) {
						assert.Equal(t, "room-1", req.RoomID)
						assert.True(t, req.StartTime.Equal(start))
						assert.True(t, req.EndTime.Equal(end))

						return sample(), nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing caller",
			body:       validBody,
			setupMock:  func(*reservationMocks.MockReservationService) {},
			wantStatus: http.StatusUnauthorized,
			wantKind:   failure.KindUnauthorized,
		},
		{
			name:       "malformed body",
			body:       `{"room_id":`,
			user:       userID,
			setupMock:  func(*reservationMocks.MockReservationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing room",
			body:       `{"start_time":"2030-01-01T10:00:00Z","end_time":"2030-01-01T11:00:00Z","party_size":1}`,
			user:       userID,
			setupMock:  func(*reservationMocks.MockReservationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "slot conflict",
			body: validBody,
			user: userID,
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Create(gomock.Any(), userID, gomock.Any()).Return(model.Reservation{}, model.ErrSlotConflict)
			},
			wantStatus: http.StatusConflict,
			wantKind:   model.KindSlotConflict,
		},
		{
			name: "capacity exceeded",
			body: validBody,
			user: userID,
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Create(gomock.Any(), userID, gomock.Any()).Return(model.Reservation{}, model.ErrCapacityExceeded)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   model.KindCapacityExceeded,
		},
		{
			name: "unknown room",
			body: validBody,
			user: userID,
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Create(gomock.Any(), userID, gomock.Any()).Return(model.Reservation{}, roomModel.ErrRoomNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantKind:   roomModel.KindRoomNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, request(http.MethodPost, "/v1/reservations", tt.body, tt.user))

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantKind != "" {
				var body errorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantKind, body.Kind)
			}

			if tt.wantStatus == http.StatusCreated {
				var body reservationBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "res-1", body.Data.ID)
				assert.Equal(t, string(model.StatusConfirmed), body.Data.Status)
			}
		})
	}
}

func TestHandler_GetReservations(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().ListForUser(gomock.Any(), userID).Return([]model.Reservation{sample()}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/reservations", "", userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Reservations []map[string]any `json:"reservations"`
			TotalData    int              `json:"total_data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.TotalData)
}

func TestHandler_GetReservationByID(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(mockService *reservationMocks.MockReservationService)
		wantStatus int
	}{
		{
			name: "owner",
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Get(gomock.Any(), userID, "res-1").Return(sample(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "other user",
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Get(gomock.Any(), userID, "res-1").Return(model.Reservation{}, model.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "missing",
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Get(gomock.Any(), userID, "res-1").Return(model.Reservation{}, model.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, request(http.MethodGet, "/v1/reservations/res-1", "", userID))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_UpdateReservation(t *testing.T) {
	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			router, mockService := newRouter(t)

			updated := sample()
			updated.EndTime = end.Add(time.Hour)

			mockService.EXPECT().
				Update(gomock.Any(), userID, "res-1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ string, req dto.UpdateReservationRequest) (model.Reservation, error) {
					require.NotNil(t, req.EndTime)
					assert.Nil(t, req.StartTime)
					assert.True(t, req.EndTime.Equal(updated.EndTime))

					return updated, nil
				})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, request(method, "/v1/reservations/res-1", `{"end_time":"2030-01-01T12:00:00Z"}`, userID))

			require.Equal(t, http.StatusOK, rec.Code)

			var body reservationBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "2030-01-01T12:00:00Z", body.Data.EndTime)
		})
	}
}

func TestHandler_UpdateReservation_Terminal(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		Update(gomock.Any(), userID, "res-1", gomock.Any()).
		Return(model.Reservation{}, model.ErrReservationTerminal)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodPatch, "/v1/reservations/res-1", `{"notes":"late"}`, userID))

	require.Equal(t, http.StatusConflict, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.KindReservationTerminal, body.Kind)
}

func TestHandler_CancelReservation(t *testing.T) {
	cancelled := sample()
	cancelled.Status = model.StatusCancelled

	tests := []struct {
		name       string
		method     string
		target     string
		setupMock  func(mockService *reservationMocks.MockReservationService)
		wantStatus int
		wantKind   string
	}{
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/v1/reservations/res-1",
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Cancel(gomock.Any(), userID, "res-1").Return(cancelled, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "put cancel",
			method: http.MethodPut,
			target: "/v1/reservations/res-1/cancel",
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Cancel(gomock.Any(), userID, "res-1").Return(cancelled, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "already cancelled",
			method: http.MethodDelete,
			target: "/v1/reservations/res-1",
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Cancel(gomock.Any(), userID, "res-1").Return(model.Reservation{}, model.ErrAlreadyCancelled)
			},
			wantStatus: http.StatusConflict,
			wantKind:   model.KindAlreadyCancelled,
		},
		{
			name:   "store unavailable",
			method: http.MethodDelete,
			target: "/v1/reservations/res-1",
			setupMock: func(mockService *reservationMocks.MockReservationService) {
				mockService.EXPECT().Cancel(gomock.Any(), userID, "res-1").Return(model.Reservation{}, failure.Unavailable(context.Canceled))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantKind:   failure.KindStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, request(tt.method, tt.target, "", userID))

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantKind != "" {
				var body errorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantKind, body.Kind)

				return
			}

			var body reservationBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(model.StatusCancelled), body.Data.Status)
		})
	}
}
