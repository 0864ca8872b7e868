package model

import (
	"fmt"
	"strings"
	"time"
)

// Audience selects the wording of a message.
type Audience int

const (
	AudienceRequester Audience = iota
	AudienceAdmin
)

// Details carries the resolved names a template needs.
type Details struct {
	RoomName      string
	RequesterName string
	Format        func(time.Time) string
}

const footer = "Este é um e-mail automático do sistema de reservas."

// Render builds the subject and plain-text body of ev for the given audience.
func Render(ev Event, audience Audience, recipientName string, details Details) (string, string) {
	var (
		subject string
		lead    string
		closing string
	)

	switch {
	case ev.EventType == EventCreated && audience == AudienceAdmin:
		subject = "Nova reserva (pendente)"
		lead = "Uma nova reserva foi realizada e está com status pendente."
		closing = "Você pode aprovar ou rejeitar no painel administrativo."
	case ev.EventType == EventCreated:
		subject = "Reserva criada (pendente)"
		lead = "Sua reserva foi criada e está pendente de aprovação."
		closing = "Você receberá um e-mail quando for aprovada ou rejeitada."
	case ev.EventType == EventApproved:
		subject = "Reserva aprovada"
		lead = "Sua solicitação de reserva foi aprovada."
		closing = "Bom uso!"
	case ev.EventType == EventRejected:
		subject = "Reserva rejeitada"
		lead = "Sua solicitação de reserva foi rejeitada."
		closing = "Se necessário, ajuste os horários ou escolha outra sala e tente novamente."
	case ev.EventType == EventCancelled && audience == AudienceAdmin:
		subject = "Reserva cancelada"
		lead = "Uma reserva foi cancelada."
	case ev.EventType == EventCancelled && ev.ByOtherThanRequester():
		subject = "Reserva cancelada"
		lead = "Sua reserva foi cancelada por um administrador."
	default:
		subject = "Reserva cancelada"
		lead = "Sua reserva foi cancelada."
	}

	greeting := "Olá, Admin."
	if audience == AudienceRequester {
		greeting = strings.TrimSpace("Olá " + recipientName)
	}

	var body strings.Builder

	body.WriteString(greeting + "\n\n")
	body.WriteString(lead + "\n\n")
	fmt.Fprintf(&body, "Sala: %s\n", details.RoomName)
	fmt.Fprintf(&body, "Título: %s\n", ev.Title)
	fmt.Fprintf(&body, "Período: %s -> %s\n", details.Format(ev.StartTime), details.Format(ev.EndTime))

	if audience == AudienceAdmin {
		fmt.Fprintf(&body, "Solicitante: %s\n", details.RequesterName)
	}

	if closing != "" {
		body.WriteString("\n" + closing + "\n")
	}

	body.WriteString("\n" + footer + "\n")

	return subject, body.String()
}
