package model

import "time"

const (
	EventCreated   = "reservation.created"
	EventApproved  = "reservation.approved"
	EventRejected  = "reservation.rejected"
	EventCancelled = "reservation.cancelled"
)

// Event is what the reservation lifecycle hands to the dispatcher.
type Event struct {
	EventType     string    `json:"event_type"`
	ReservationID string    `json:"reservation_id"`
	RoomID        string    `json:"room_id"`
	RequesterID   string    `json:"requester_id"`
	NewStatus     string    `json:"new_status"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Title         string    `json:"title"`
	ActorID       string    `json:"actor_id"`
}

// ByOtherThanRequester is true when someone other than the requester triggered the event.
func (e Event) ByOtherThanRequester() bool {
	return e.ActorID != "" && e.ActorID != e.RequesterID
}

type Recipient struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Message is one rendered notification addressed to a single recipient.
type Message struct {
	EventType     string    `json:"event_type"`
	ReservationID string    `json:"reservation_id"`
	Recipient     Recipient `json:"recipient"`
	Subject       string    `json:"subject"`
	Body          string    `json:"body"`
}
