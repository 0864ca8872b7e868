package room

import (
	"agendador/config"
	"agendador/infras/otel"
	"agendador/internal/domains/room/model"
	"agendador/internal/domains/room/model/dto"
	"agendador/internal/domains/room/service"
	"agendador/shared/constant"
	gDto "agendador/shared/dto"
	"agendador/shared/failure"
	"agendador/shared/validator"
	"agendador/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Room, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms lists rooms ordered by name. Only active rooms unless active=false is passed.
// @Summary List rooms
// @Tags Room
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Param page_size query int false "Page size"
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active status, defaults to true"
// @Success 200 {object} response.Data[dto.ListRoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	params := gDto.QueryParams{}
	if err := params.FromRequest(request, handler.cfg.Reservation.DefaultPageSize); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	query := request.URL.Query()
	req := dto.ListRoomsRequest{Name: query.Get(model.FieldName)}

	if raw := query.Get(model.FieldActive); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			scope.TraceError(err)

			response.WithError(writer, failure.BadRequestFromString("active must be a boolean"))

			return
		}

		req.Active = &active
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, params, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(writer, http.StatusOK, res)
}
