package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agendador/config"
	"agendador/internal/domains/notification/model"
	"agendador/internal/domains/notification/sink"
	roomModel "agendador/internal/domains/room/model"
	roomRepo "agendador/internal/domains/room/repository"
	userModel "agendador/internal/domains/user/model"
	userRepo "agendador/internal/domains/user/repository"
	"agendador/shared"
	"agendador/shared/constant"
	"agendador/shared/metrics"
	"agendador/shared/timezone"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultQueueSize = 256
	defaultWorkers   = 2
)

var ErrClosed = errors.New("notification dispatcher is closed")

// Dispatcher turns lifecycle events into messages delivered off the request path.
type Dispatcher interface {
	// Dispatch never blocks. Events are dropped and logged when the queue is full or closed.
	Dispatch(ev model.Event)
	Start()
	Shutdown(ctx context.Context) error
}

type Option func(*dispatcherImpl)

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(d *dispatcherImpl) {
		d.retry = policy
	}
}

func WithFormatter(format func(time.Time) string) Option {
	return func(d *dispatcherImpl) {
		d.format = format
	}
}

type dispatcherImpl struct {
	userRepo userRepo.User
	roomRepo roomRepo.Room
	sink     sink.Sink
	retry    RetryPolicy
	format   func(time.Time) string
	workers  int

	mu      sync.RWMutex
	closed  bool
	started bool
	queue   chan model.Event
	wg      sync.WaitGroup

	ctx    context.Context //nolint:containedctx
	cancel context.CancelFunc
}

func New(cfg *config.Config, userRepo userRepo.User, roomRepo roomRepo.Room, sink sink.Sink, opts ...Option) Dispatcher {
	queueSize := cfg.Notification.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	workers := cfg.Notification.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	ctx, cancel := context.WithCancel(context.Background())

	d := &dispatcherImpl{
		userRepo: userRepo,
		roomRepo: roomRepo,
		sink:     sink,
		retry:    DefaultRetryPolicy(cfg.Notification.RetryAttempts),
		format:   timezone.AppFormatDisplay,
		workers:  workers,
		queue:    make(chan model.Event, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *dispatcherImpl) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.closed {
		return
	}

	d.started = true

	for range d.workers {
		d.wg.Add(1)

		go d.work()
	}

	log.Info().Int("workers", d.workers).Str("sink", d.sink.Name()).Msg("Notification dispatcher started")
}

func (d *dispatcherImpl) Dispatch(ev model.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.IncDispatch(metrics.DispatchDropped)
		log.Warn().Err(ErrClosed).Str("event_type", ev.EventType).Str("reservation_id", ev.ReservationID).
			Msg("notification dropped")

		return
	}

	select {
	case d.queue <- ev:
	default:
		metrics.IncDispatch(metrics.DispatchDropped)
		log.Warn().Str("event_type", ev.EventType).Str("reservation_id", ev.ReservationID).
			Msg("notification queue full, event dropped")
	}
}

// Shutdown stops accepting events and waits for queued ones to be delivered.
// Pending retries are abandoned once ctx expires.
func (d *dispatcherImpl) Shutdown(ctx context.Context) error {
	d.mu.Lock()

	if d.closed {
		d.mu.Unlock()

		return nil
	}

	d.closed = true
	close(d.queue)

	if !d.started {
		d.started = true

		d.wg.Add(1)

		go d.work()
	}

	d.mu.Unlock()

	done := make(chan struct{})

	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()

		log.Info().Msg("Notification dispatcher drained")

		return nil
	case <-ctx.Done():
		d.cancel()
		<-done

		return fmt.Errorf("failed to drain notification dispatcher: %w", ctx.Err())
	}
}

func (d *dispatcherImpl) work() {
	defer d.wg.Done()

	for ev := range d.queue {
		d.handle(ev)
	}
}

type target struct {
	recipient model.Recipient
	audience  model.Audience
}

func (d *dispatcherImpl) handle(ev model.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("reservation_id", ev.ReservationID).Msg("notification worker recovered")
		}
	}()

	ctx := d.ctx

	requester := d.requester(ctx, ev.RequesterID)

	details := model.Details{
		RoomName:      d.roomName(ctx, ev.RoomID),
		RequesterName: requester.DisplayName(),
		Format:        d.format,
	}

	for _, t := range d.targets(ctx, ev, requester) {
		subject, body := model.Render(ev, t.audience, t.recipient.Name, details)

		d.send(ctx, model.Message{
			EventType:     ev.EventType,
			ReservationID: ev.ReservationID,
			Recipient:     t.recipient,
			Subject:       subject,
			Body:          body,
		})
	}
}

func (d *dispatcherImpl) targets(ctx context.Context, ev model.Event, requester userModel.User) []target {
	toRequester := false
	toAdmins := false

	switch ev.EventType {
	case model.EventCreated:
		toRequester = true
		toAdmins = true
	case model.EventApproved, model.EventRejected:
		toRequester = true
	case model.EventCancelled:
		toAdmins = true
		toRequester = ev.ByOtherThanRequester()
	}

	seen := map[string]bool{}
	targets := make([]target, 0)

	if toRequester && requester.ID != constant.Empty {
		seen[requester.ID] = true
		targets = append(targets, target{recipient: recipientOf(requester), audience: model.AudienceRequester})
	}

	if !toAdmins {
		return targets
	}

	admins, err := d.userRepo.ListAdmins(ctx)
	if err != nil {
		log.Error().Err(err).Str("reservation_id", ev.ReservationID).Msg("failed to list admin recipients")

		return targets
	}

	for _, admin := range admins {
		if seen[admin.ID] {
			continue
		}

		seen[admin.ID] = true
		targets = append(targets, target{recipient: recipientOf(admin), audience: model.AudienceAdmin})
	}

	return targets
}

func (d *dispatcherImpl) send(ctx context.Context, msg model.Message) {
	var err error

	attempts := d.retry.attempts()

retry:
	for attempt := 1; ; attempt++ {
		if err = d.sink.Send(ctx, msg); err == nil {
			metrics.IncDispatch(metrics.DispatchSent)

			return
		}

		if attempt >= attempts {
			break
		}

		timer := time.NewTimer(d.retry.NextDelay(attempt))

		select {
		case <-ctx.Done():
			timer.Stop()

			err = errors.Join(err, ctx.Err())

			break retry
		case <-timer.C:
		}
	}

	metrics.IncDispatch(metrics.DispatchFailed)
	log.Error().Err(err).
		Str("sink", d.sink.Name()).
		Str("event_type", msg.EventType).
		Str("reservation_id", msg.ReservationID).
		Str("to", msg.Recipient.Email).
		Msg("failed to deliver notification")
}

func (d *dispatcherImpl) requester(ctx context.Context, id string) userModel.User {
	user, err := d.userRepo.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to get notification requester")
	}

	return user
}

func (d *dispatcherImpl) roomName(ctx context.Context, id string) string {
	room, err := d.roomRepo.Get(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName), roomModel.FieldID, roomModel.FieldName)
	if err != nil || room.ID == constant.Empty {
		if err != nil {
			log.Error().Err(err).Str("room_id", id).Msg("failed to get notification room")
		}

		return id
	}

	return room.Name
}

func recipientOf(user userModel.User) model.Recipient {
	return model.Recipient{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.DisplayName(),
	}
}
