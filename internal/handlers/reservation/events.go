package reservation

import (
	"agendador/shared/constant"
	"agendador/shared/failure"
	gModel "agendador/shared/model"
	"agendador/transport/http/response"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	sseEventHello   = "hello"
	sseEventMessage = "message"

	defaultHeartbeat = 25 * time.Second
)

var helloPayload = []byte(`{"type":"connected"}`)

// StreamEvents keeps the connection open and forwards reservation changes.
// @Summary Stream reservation changes
// @Description Server-sent events. The first event is "hello", then one "message" per change. Pass the token as ?token= when headers cannot be set.
// @Tags Reservation
// @Produce text/event-stream
// @Param token query string false "Access token"
// @Success 200 {string} string "event stream"
// @Failure 401 {object} response.Error
// @Router /v1/reservations/events [get]
// @Security BearerAuth
func (handler *Handler) StreamEvents(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	caller := gModel.CallerFromContext(ctx)
	if caller.IsZero() {
		response.WithError(writer, failure.Unauthorized("authentication required"))

		return
	}

	flusher, ok := writer.(http.Flusher)
	if !ok {
		response.WithError(writer, failure.InternalError(fmt.Errorf("streaming unsupported by %T", writer)))

		return
	}

	sub := handler.hub.Register(caller.ID, caller.Role)
	defer handler.hub.Unregister(sub.ID)

	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, constant.ContentTypeEventStream)
	header.Set(constant.RequestHeaderCacheControl, "no-cache")
	header.Set(constant.RequestHeaderConnection, "keep-alive")
	header.Set(constant.RequestHeaderAccelBuffering, "no")
	writer.WriteHeader(http.StatusOK)

	if err := writeEvent(writer, sseEventHello, helloPayload); err != nil {
		return
	}

	flusher.Flush()

	log.Info().Str("observer", sub.ID).Str("user", caller.ID).Msg("observer connected")

	heartbeat := defaultHeartbeat
	if seconds := handler.cfg.Broadcast.HeartbeatSeconds; seconds > 0 {
		heartbeat = time.Duration(seconds) * time.Second
	}

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("observer", sub.ID).Msg("observer disconnected")

			return
		case <-ticker.C:
			if _, err := io.WriteString(writer, ": ping\n\n"); err != nil {
				return
			}

			flusher.Flush()
		case msg, ok := <-sub.C:
			if !ok {
				return
			}

			data, err := json.Marshal(msg)
			if err != nil {
				log.Error().Err(err).Str("type", msg.Type).Msg("failed to encode event")

				continue
			}

			if err := writeEvent(writer, sseEventMessage, data); err != nil {
				return
			}

			flusher.Flush()
		}
	}
}

func writeEvent(writer io.Writer, event string, data []byte) error {
	_, err := fmt.Fprintf(writer, "event: %s\ndata: %s\n\n", event, data)
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}
