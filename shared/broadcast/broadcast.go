package broadcast

//go:generate go run go.uber.org/mock/mockgen -source=./broadcast.go -destination=./mocks/broadcast_mock.go -package=mocks

import (
	"agendador/shared/constant"
	"agendador/shared/metrics"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TypeReservationCreated   = "reservation-created"
	TypeReservationUpdated   = "reservation-updated"
	TypeReservationCancelled = "reservation-cancelled"
)

const defaultBuffer = 16

// Message is one event delivered to an observer.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Subscription is the receiving end handed to a connected observer.
// C is closed once the observer is deregistered.
type Subscription struct {
	ID   string
	Role string
	C    <-chan Message
}

type observer struct {
	id     string
	role   string
	stream chan Message
}

// Hub fans reservation changes out to connected observers.
type Hub interface {
	Register(callerID, role string) *Subscription
	Unregister(id string)
	Publish(eventType string, payload any)
	Count() int
	Close()
}

type hub struct {
	mu        sync.Mutex
	observers map[string]*observer
	buffer    int
	closed    bool
}

func New(buffer int) Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	return &hub{
		observers: make(map[string]*observer),
		buffer:    buffer,
	}
}

func (h *hub) Register(callerID, role string) *Subscription {
	obs := &observer{
		id:     uuid.NewString(),
		role:   role,
		stream: make(chan Message, h.buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(obs.stream)

		return &Subscription{ID: obs.id, Role: role, C: obs.stream}
	}

	h.observers[obs.id] = obs
	metrics.SetObservers(len(h.observers))

	log.Debug().Str("observer_id", obs.id).Str("caller_id", callerID).Str("role", role).Msg("observer registered")

	return &Subscription{ID: obs.id, Role: role, C: obs.stream}
}

func (h *hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.remove(id)
}

// Publish makes one non-blocking delivery attempt per observer. An observer
// whose buffer is full is dropped.
func (h *hub) Publish(eventType string, payload any) {
	msg := Message{Type: eventType, Payload: payload}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, obs := range h.observers {
		if !visible(eventType, obs.role) {
			continue
		}

		select {
		case obs.stream <- msg:
		default:
			log.Warn().Str("observer_id", id).Str("type", eventType).Msg("observer not keeping up, deregistering")
			h.remove(id)
		}
	}
}

func (h *hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.observers)
}

// Close deregisters every observer. Later registrations receive a closed stream.
func (h *hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id := range h.observers {
		h.remove(id)
	}

	h.closed = true
}

// remove expects h.mu to be held.
func (h *hub) remove(id string) {
	obs, ok := h.observers[id]
	if !ok {
		return
	}

	delete(h.observers, id)
	close(obs.stream)
	metrics.SetObservers(len(h.observers))
}

func visible(eventType, role string) bool {
	if eventType == TypeReservationCreated {
		return role == constant.RoleAdmin
	}

	return true
}
