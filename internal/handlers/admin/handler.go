package admin

import (
	"agendador/infras/otel"
	reportDto "agendador/internal/domains/report/model/dto"
	reportService "agendador/internal/domains/report/service"
	reservationService "agendador/internal/domains/reservation/service"
	"agendador/shared/constant"
	"agendador/shared/validator"
	"agendador/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryFormat = "format"

type Handler struct {
	reservation reservationService.Reservation
	report      reportService.Report
	otel        otel.Otel
}

func New(reservation reservationService.Reservation, report reportService.Report, otel otel.Otel) Handler {
	return Handler{
		reservation: reservation,
		report:      report,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Put("/reservations/{id}/approve", handler.ApproveReservation)
		routerGroup.Put("/reservations/{id}/reject", handler.RejectReservation)
		routerGroup.Get("/reports", handler.GetReport)
		routerGroup.Post("/reports/export", handler.ExportReport)
	})
}

// ApproveReservation moves a pending reservation to approved.
// @Summary Approve a reservation
// @Tags Admin
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/reservations/{id}/approve [put]
// @Security BearerAuth
func (handler *Handler) ApproveReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveReservation")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.reservation.Approve(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to approve reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// RejectReservation moves a pending reservation to rejected.
// @Summary Reject a reservation
// @Tags Admin
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/reservations/{id}/reject [put]
// @Security BearerAuth
func (handler *Handler) RejectReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectReservation")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.reservation.Reject(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to reject reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReport returns reservation totals per room.
// @Summary Reservations per room
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[reportDto.ReportResponse]
// @Failure 403 {object} response.Error
// @Router /v1/admin/reports [get]
// @Security BearerAuth
func (handler *Handler) GetReport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReport")
	defer scope.End()

	res, err := handler.report.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build report")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExportReport renders the report as a file in object storage.
// @Summary Export reservations per room
// @Tags Admin
// @Produce json
// @Param format query string false "csv (default) or xlsx"
// @Success 201 {object} response.Data[reportDto.ExportResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/reports/export [post]
// @Security BearerAuth
func (handler *Handler) ExportReport(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReport")
	defer scope.End()

	req := reportDto.ExportRequest{Format: request.URL.Query().Get(queryFormat)}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.report.Export(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export report")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Report exported to " + res.URL)

	response.WithJSON(writer, http.StatusCreated, res)
}
