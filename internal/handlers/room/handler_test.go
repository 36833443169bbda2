package room_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"easybooking/infras/otel/mocks"
	reservationMocks "easybooking/internal/domains/reservation/mocks"
	reservationModel "easybooking/internal/domains/reservation/model"
	roomMocks "easybooking/internal/domains/room/mocks"
	"easybooking/internal/domains/room/model"
	"easybooking/internal/handlers/room"
	"easybooking/shared/failure"
)

type roomsBody struct {
	Data struct {
		Rooms     []map[string]any `json:"rooms"`
		TotalData int              `json:"total_data"`
	} `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func newRouter(t *testing.T) (http.Handler, *roomMocks.MockRoomService, *reservationMocks.MockReservationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRooms := roomMocks.NewMockRoomService(ctrl)
	mockReservations := reservationMocks.NewMockReservationService(ctrl)

	handler := room.New(mockRooms, mockReservations, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, mockRooms, mockReservations
}

func TestHandler_GetRooms(t *testing.T) {
	router, mockRooms, _ := newRouter(t)

	mockRooms.EXPECT().List(gomock.Any()).Return([]model.Room{
		{ID: "r1", Name: "Mercure", Floor: 1, Number: 1, Capacity: 1},
		{ID: "r2", Name: "Mars", Floor: 2, Number: 1, Capacity: 2},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body roomsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.TotalData)
	assert.Equal(t, "Mercure", body.Data.Rooms[0]["name"])
}

func TestHandler_GetRoomByID(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(mockRooms *roomMocks.MockRoomService)
		wantStatus int
		wantKind   string
	}{
		{
			name: "found",
			setupMock: func(mockRooms *roomMocks.MockRoomService) {
				mockRooms.EXPECT().Get(gomock.Any(), "r1").Return(model.Room{ID: "r1", Name: "Mercure", Capacity: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown room",
			setupMock: func(mockRooms *roomMocks.MockRoomService) {
				mockRooms.EXPECT().Get(gomock.Any(), "r1").Return(model.Room{}, model.ErrRoomNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantKind:   model.KindRoomNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockRooms, _ := newRouter(t)
			tt.setupMock(mockRooms)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/r1", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantKind != "" {
				var body errorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantKind, body.Kind)
			}
		})
	}
}

func TestHandler_CheckAvailability(t *testing.T) {
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	query := "?start_time=2030-01-01T10:00:00Z&end_time=2030-01-01T11:00:00Z"

	tests := []struct {
		name          string
		query         string
		setupMock     func(mockReservations *reservationMocks.MockReservationService)
		wantStatus    int
		wantAvailable bool
		wantRetry     bool
	}{
		{
			name:  "available",
			query: query,
			setupMock: func(mockReservations *reservationMocks.MockReservationService) {
				mockReservations.EXPECT().
					CheckAvailability(gomock.Any(), "r1", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, gotStart, gotEnd time.Time) (bool, error) {
						assert.True(t, gotStart.Equal(start))
						assert.True(t, gotEnd.Equal(end))

						return true, nil
					})
			},
			wantStatus:    http.StatusOK,
			wantAvailable: true,
		},
		{
			name:       "missing end time",
			query:      "?start_time=2030-01-01T10:00:00Z",
			setupMock:  func(*reservationMocks.MockReservationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "inverted window",
			query: "?start_time=2030-01-01T11:00:00Z&end_time=2030-01-01T10:00:00Z",
			setupMock: func(mockReservations *reservationMocks.MockReservationService) {
				mockReservations.EXPECT().
					CheckAvailability(gomock.Any(), "r1", gomock.Any(), gomock.Any()).
					Return(false, reservationModel.ErrInvalidInterval)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "store unavailable",
			query: query,
			setupMock: func(mockReservations *reservationMocks.MockReservationService) {
				mockReservations.EXPECT().
					CheckAvailability(gomock.Any(), "r1", gomock.Any(), gomock.Any()).
					Return(false, failure.Unavailable(context.DeadlineExceeded))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, mockReservations := newRouter(t)
			tt.setupMock(mockReservations)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/r1/availability"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRetry, rec.Header().Get("Retry-After") != "")

			if tt.wantStatus == http.StatusOK {
				var body struct {
					Data struct {
						RoomID    string `json:"room_id"`
						Available bool   `json:"available"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "r1", body.Data.RoomID)
				assert.Equal(t, tt.wantAvailable, body.Data.Available)
			}
		})
	}
}

func TestHandler_GetAvailableRooms(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(mockReservations *reservationMocks.MockReservationService)
		wantStatus int
		wantRooms  int
	}{
		{
			name:  "with party size",
			query: "?start_time=2030-01-01T10:00:00Z&end_time=2030-01-01T11:00:00Z&party_size=3",
			setupMock: func(mockReservations *reservationMocks.MockReservationService) {
				mockReservations.EXPECT().
					AvailableRooms(gomock.Any(), gomock.Any(), gomock.Any(), 3).
					Return([]model.Room{{ID: "r7", Name: "Uranus", Capacity: 4}}, nil)
			},
			wantStatus: http.StatusOK,
			wantRooms:  1,
		},
		{
			name:  "without party size",
			query: "?start_time=2030-01-01T10:00:00Z&end_time=2030-01-01T11:00:00Z",
			setupMock: func(mockReservations *reservationMocks.MockReservationService) {
				mockReservations.EXPECT().
					AvailableRooms(gomock.Any(), gomock.Any(), gomock.Any(), 0).
					Return([]model.Room{}, nil)
			},
			wantStatus: http.StatusOK,
			wantRooms:  0,
		},
		{
			name:       "party size not a number",
			query:      "?start_time=2030-01-01T10:00:00Z&end_time=2030-01-01T11:00:00Z&party_size=many",
			setupMock:  func(*reservationMocks.MockReservationService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed start",
			query:      "?start_time=tomorrow&end_time=2030-01-01T11:00:00Z",
			setupMock:  func(*reservationMocks.MockReservationService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, mockReservations := newRouter(t)
			tt.setupMock(mockReservations)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/available"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var body roomsBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Len(t, body.Data.Rooms, tt.wantRooms)
			}
		})
	}
}
