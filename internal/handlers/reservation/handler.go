package reservation

import (
	"agendador/config"
	"agendador/infras/otel"
	"agendador/internal/domains/reservation/model/dto"
	"agendador/internal/domains/reservation/service"
	"agendador/shared/broadcast"
	"agendador/shared/constant"
	gDto "agendador/shared/dto"
	"agendador/shared/failure"
	"agendador/shared/validator"
	"agendador/transport/http/response"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryRequesterID = "requester_id"
	queryRoomID      = "room_id"
	queryStatus      = "status"
	queryDate        = "date"
	queryStartTime   = "start_time"
	queryEndTime     = "end_time"
	queryExcludeID   = "exclude_id"
)

type Handler struct {
	service service.Reservation
	hub     broadcast.Hub
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Reservation, hub broadcast.Hub, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		hub:     hub,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/mine", handler.GetMyReservations)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Get("/events", handler.StreamEvents)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}", handler.UpdateReservation)
		routerGroup.Put("/{id}/cancel", handler.CancelReservation)
	})
}

// CreateReservation handles the creation of a new reservation.
// @Summary Create a reservation
// @Description Request a room for an interval. Regular users always start in pending.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetReservations lists reservations, one page at a time.
// @Summary List reservations
// @Tags Reservation
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Param page_size query int false "Page size"
// @Param requester_id query string false "Filter by requester"
// @Param room_id query string false "Filter by room"
// @Param status query string false "pending, approved, rejected or cancelled"
// @Param date query string false "Local day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ListReservationsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	params, req, err := handler.listParams(request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, params, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetMyReservations lists the caller's own reservations.
// @Summary List my reservations
// @Tags Reservation
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Param page_size query int false "Page size"
// @Param status query string false "pending, approved, rejected or cancelled"
// @Param date query string false "Local day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ListReservationsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/reservations/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	params, req, err := handler.listParams(request)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Mine(ctx, params, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list own reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAvailability reports whether a room is free for an interval.
// @Summary Check room availability
// @Tags Reservation
// @Produce json
// @Param room_id query string true "Room ID"
// @Param start_time query string true "RFC3339 start"
// @Param end_time query string true "RFC3339 end"
// @Param exclude_id query string false "Reservation to ignore"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	query := request.URL.Query()

	req := dto.AvailabilityRequest{
		RoomID:    query.Get(queryRoomID),
		ExcludeID: query.Get(queryExcludeID),
	}

	var err error

	if req.StartTime, err = parseTime(query, queryStartTime); err == nil {
		req.EndTime, err = parseTime(query, queryEndTime)
	}

	if err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Availability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateReservation applies a partial update.
// @Summary Update a reservation
// @Description Only the fields present in the body change. Moving a reservation keeps it free of overlaps.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Update Reservation Request"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateReservationRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelReservation cancels a pending or approved reservation.
// @Summary Cancel a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/reservations/{id}/cancel [put]
// @Security BearerAuth
func (handler *Handler) CancelReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to cancel reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) listParams(request *http.Request) (gDto.QueryParams, dto.ListReservationsRequest, error) {
	params := gDto.QueryParams{}
	if err := params.FromRequest(request, handler.cfg.Reservation.DefaultPageSize); err != nil {
		return params, dto.ListReservationsRequest{}, err
	}

	query := request.URL.Query()

	req := dto.ListReservationsRequest{
		RequesterID: query.Get(queryRequesterID),
		RoomID:      query.Get(queryRoomID),
		Status:      query.Get(queryStatus),
		Date:        query.Get(queryDate),
	}

	return params, req, validator.ValidateStruct(&req)
}

func parseTime(query url.Values, key string) (time.Time, error) {
	raw := query.Get(key)
	if raw == "" {
		return time.Time{}, failure.BadRequestFromString(key + " is required")
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(key + " must be an RFC3339 timestamp")
	}

	return t, nil
}
