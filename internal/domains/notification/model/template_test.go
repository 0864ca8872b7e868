package model_test

import (
	"agendador/internal/domains/notification/model"
	"agendador/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	ev := model.Event{
		RequesterID: "user-1",
		Title:       "Sprint review",
		StartTime:   time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
	}

	details := model.Details{
		RoomName:      "Sala 1",
		RequesterName: "Ana",
		Format: func(t time.Time) string {
			return timezone.FormatDisplay(t, -180)
		},
	}

	tests := []struct {
		name        string
		eventType   string
		actorID     string
		audience    model.Audience
		wantSubject string
		wantBody    []string
		notInBody   []string
	}{
		{
			name:        "created for requester",
			eventType:   model.EventCreated,
			audience:    model.AudienceRequester,
			wantSubject: "Reserva criada (pendente)",
			wantBody:    []string{"Olá Ana", "pendente de aprovação", "10/03/2025, 10:00 -> 10/03/2025, 11:30"},
			notInBody:   []string{"Solicitante"},
		},
		{
			name:        "created for admin",
			eventType:   model.EventCreated,
			audience:    model.AudienceAdmin,
			wantSubject: "Nova reserva (pendente)",
			wantBody:    []string{"Olá, Admin.", "Solicitante: Ana", "Sala: Sala 1"},
		},
		{
			name:        "approved",
			eventType:   model.EventApproved,
			audience:    model.AudienceRequester,
			wantSubject: "Reserva aprovada",
			wantBody:    []string{"aprovada", "Bom uso!"},
		},
		{
			name:        "rejected",
			eventType:   model.EventRejected,
			audience:    model.AudienceRequester,
			wantSubject: "Reserva rejeitada",
			wantBody:    []string{"rejeitada"},
		},
		{
			name:        "cancelled by admin",
			eventType:   model.EventCancelled,
			actorID:     "admin-1",
			audience:    model.AudienceRequester,
			wantSubject: "Reserva cancelada",
			wantBody:    []string{"por um administrador"},
		},
		{
			name:        "cancelled by requester",
			eventType:   model.EventCancelled,
			actorID:     "user-1",
			audience:    model.AudienceRequester,
			wantSubject: "Reserva cancelada",
			wantBody:    []string{"Sua reserva foi cancelada."},
			notInBody:   []string{"administrador"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := ev
			event.EventType = tt.eventType
			event.ActorID = tt.actorID

			subject, body := model.Render(event, tt.audience, "Ana", details)

			assert.Equal(t, tt.wantSubject, subject)

			for _, fragment := range tt.wantBody {
				assert.Contains(t, body, fragment)
			}

			for _, fragment := range tt.notInBody {
				assert.NotContains(t, body, fragment)
			}
		})
	}
}
