package room

import (
	"easybooking/infras/otel"
	reservationService "easybooking/internal/domains/reservation/service"
	"easybooking/internal/domains/room/model/dto"
	"easybooking/internal/domains/room/service"
	"easybooking/shared/constant"
	"easybooking/shared/validator"
	"easybooking/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Room
	reservations reservationService.Reservation
	otel         otel.Otel
}

func New(service service.Room, reservations reservationService.Reservation, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		reservations: reservations,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Get("/{id}/availability", handler.CheckAvailability)
	})
}

// GetRooms lists the room catalog.
// @Summary Get all rooms
// @Description Retrieve every bookable room ordered by floor and number.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	res := dto.GetRoomsResponse{}
	res.FromModels(rooms)

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailableRooms searches rooms free for the whole window that fit the party.
// @Summary Search available rooms
// @Description Retrieve rooms with no active reservation overlapping the window.
// @Tags Room
// @Accept json
// @Produce json
// @Param start_time query string true "Window start (RFC3339)"
// @Param end_time query string true "Window end (RFC3339)"
// @Param party_size query integer false "Number of attendees"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	req := dto.AvailableRoomsRequest{}
	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	start, end, err := req.Interval()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rooms, err := handler.reservations.AvailableRooms(ctx, start, end, req.PartySize)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search available rooms")

		response.WithError(w, err)

		return
	}

	res := dto.GetRoomsResponse{}
	res.FromModels(rooms)

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("room", id).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	res := dto.RoomResponse{}
	res.FromModel(room)

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CheckAvailability reports whether a room is free for a window.
// @Summary Check room availability
// @Description Report whether no active reservation of the room overlaps the window.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param start_time query string true "Window start (RFC3339)"
// @Param end_time query string true "Window end (RFC3339)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/{id}/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AvailabilityRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	start, end, err := req.Interval()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	available, err := handler.reservations.CheckAvailability(ctx, id, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", id).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	res := dto.AvailabilityResponse{}
	res.FromResult(id, start, end, available)

	response.WithJSON(w, http.StatusOK, res)
}
