package reservation

import (
	"context"
	"easybooking/infras/otel"
	"easybooking/internal/domains/reservation/model/dto"
	"easybooking/internal/domains/reservation/service"
	"easybooking/shared/constant"
	"easybooking/shared/failure"
	"easybooking/shared/validator"
	"easybooking/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}", handler.UpdateReservation)
		routerGroup.Put("/{id}", handler.UpdateReservation)
		routerGroup.Delete("/{id}", handler.CancelReservation)
		routerGroup.Put("/{id}/cancel", handler.CancelReservation)
	})
}

// CreateReservation books a room for the caller.
// @Summary Create a reservation
// @Description Book a room for a half-open time window.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	userID, err := caller(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("room", req.RoomID).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	scope.AddEvent("Reservation created successfully by user " + userID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReservations lists the caller's reservations.
// @Summary Get my reservations
// @Description Retrieve every reservation of the caller, newest first.
// @Tags Reservation
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	userID, err := caller(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	reservations, err := handler.service.ListForUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	res := dto.GetReservationsResponse{}
	res.FromModels(reservations)

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservationByID retrieves one of the caller's reservations.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation owned by the caller.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	userID, err := caller(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("reservation", id).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReservation changes the window, party size or notes of a reservation.
// @Summary Update a reservation
// @Description Partially update a reservation owned by the caller. Omitted fields are unchanged.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation updated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations/{id} [patch]
// @Router /v1/reservations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	userID, err := caller(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Update(ctx, userID, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("reservation", id).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	scope.AddEvent("Reservation updated successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}

// CancelReservation cancels one of the caller's reservations and frees its slot.
// @Summary Cancel a reservation
// @Description Cancel a reservation owned by the caller.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation cancelled"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Router /v1/reservations/{id}/cancel [put]
// @Security BearerAuth
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	userID, err := caller(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Cancel(ctx, userID, id)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("reservation", id).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	scope.AddEvent("Reservation cancelled successfully by user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}

// caller returns the authenticated user id set by the auth middleware.
func caller(ctx context.Context) (string, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return constant.Empty, failure.Unauthorized("Missing caller identity")
	}

	return userID, nil
}
