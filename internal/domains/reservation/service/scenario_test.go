package service_test

import (
	"agendador/config"
	"agendador/infras/otel/mocks"
	nModel "agendador/internal/domains/notification/model"
	"agendador/internal/domains/reservation/model"
	"agendador/internal/domains/reservation/model/dto"
	"agendador/internal/domains/reservation/repository"
	"agendador/internal/domains/reservation/service"
	roomMocks "agendador/internal/domains/room/mocks"
	userMocks "agendador/internal/domains/user/mocks"
	"agendador/shared/broadcast"
	"agendador/shared/cache"
	gDto "agendador/shared/dto"
	"agendador/shared/failure"
	gModel "agendador/shared/model"
	"agendador/shared/timezone"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingDispatcher struct {
	mu     sync.Mutex
	events []nModel.Event
}

func (r *recordingDispatcher) Dispatch(ev nModel.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, ev)
}

func (r *recordingDispatcher) Start() {}

func (r *recordingDispatcher) Shutdown(_ context.Context) error {
	return nil
}

func (r *recordingDispatcher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		res = append(res, ev.EventType)
	}

	return res
}

type scenario struct {
	store      repository.Reservation
	hub        broadcast.Hub
	dispatcher *recordingDispatcher
	svc        service.Reservation
}

func newScenario(t *testing.T) *scenario {
	t.Helper()

	ctrl := gomock.NewController(t)

	rooms := roomMocks.NewMockRoom(ctrl)
	rooms.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(activeRoom, nil).AnyTimes()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Reservation.DefaultPageSize = 10

	sc := &scenario{
		store:      repository.NewInMemory(),
		hub:        broadcast.New(64),
		dispatcher: &recordingDispatcher{},
	}

	t.Cleanup(sc.hub.Close)

	sc.svc = service.New(sc.store, rooms, userMocks.NewMockUser(ctrl), sc.hub, sc.dispatcher, timezone.FixedClock(now), cfg,
		cache.NewRedisCache(client, mocks.NewOtel()), mocks.NewOtel())

	return sc
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 9, 15, hour, minute, 0, 0, time.UTC)
}

func (sc *scenario) create(caller gModel.Caller, start, end time.Time) (dto.ReservationResponse, error) {
	return sc.svc.Create(asCaller(caller), dto.CreateReservationRequest{
		RoomID:    activeRoom.ID,
		Title:     "Reunião",
		StartTime: start,
		EndTime:   end,
	})
}

func drain(sub *broadcast.Subscription) []string {
	var types []string

	for {
		select {
		case msg, ok := <-sub.C:
			if !ok {
				return types
			}

			types = append(types, msg.Type)
		default:
			return types
		}
	}
}

func TestScenario_Lifecycle(t *testing.T) {
	sc := newScenario(t)

	adminObserver := sc.hub.Register(admin.ID, admin.Role)
	userObserver := sc.hub.Register(owner.ID, owner.Role)

	// 1. pending, then an overlapping request is refused.
	first, err := sc.create(owner, at(8, 0), at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, first.Status)

	_, err = sc.create(stranger, at(9, 0), at(11, 0))
	assert.True(t, failure.Is(err, failure.KindConflict))

	// 4. a regular user cannot approve.
	_, err = sc.svc.Approve(asCaller(stranger), first.ID)
	assert.True(t, failure.Is(err, failure.KindForbidden))

	stored, err := sc.store.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)

	// 2. admin approves.
	approved, err := sc.svc.Approve(asCaller(admin), first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, approved.Status)

	_, err = sc.svc.Reject(asCaller(admin), first.ID)
	assert.True(t, failure.Is(err, failure.KindInvalidTransition))

	assert.Equal(t, []string{broadcast.TypeReservationCreated, broadcast.TypeReservationUpdated}, drain(adminObserver))
	assert.Equal(t, []string{broadcast.TypeReservationUpdated}, drain(userObserver))

	// 3. owner cancels, the slot frees up.
	cancelled, err := sc.svc.Cancel(asCaller(owner), first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)

	_, err = sc.svc.Cancel(asCaller(owner), first.ID)
	assert.True(t, failure.Is(err, failure.KindInvalidTransition))

	second, err := sc.create(stranger, at(8, 0), at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, second.Status)

	assert.Equal(t, []string{broadcast.TypeReservationCancelled}, drain(userObserver))

	assert.Equal(t, []string{
		nModel.EventCreated,
		nModel.EventApproved,
		nModel.EventCancelled,
		nModel.EventCreated,
	}, sc.dispatcher.types())
}

func TestScenario_HalfOpenBoundary(t *testing.T) {
	sc := newScenario(t)

	_, err := sc.create(owner, at(10, 0), at(11, 0))
	require.NoError(t, err)

	_, err = sc.create(stranger, at(11, 0), at(12, 0))
	assert.NoError(t, err)

	_, err = sc.create(stranger, at(9, 0), at(10, 0))
	assert.NoError(t, err)

	_, err = sc.create(stranger, at(10, 30), at(11, 30))
	assert.True(t, failure.Is(err, failure.KindConflict))
}

func TestScenario_CancelEnded(t *testing.T) {
	sc := newScenario(t)

	past, err := sc.create(owner, at(5, 0), at(6, 0))
	require.NoError(t, err)

	_, err = sc.svc.Cancel(asCaller(owner), past.ID)
	assert.True(t, failure.Is(err, failure.KindAlreadyEnded))

	stored, err := sc.store.GetByID(context.Background(), past.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
}

func TestScenario_RejectedDoesNotBlock(t *testing.T) {
	sc := newScenario(t)

	first, err := sc.create(owner, at(8, 0), at(9, 0))
	require.NoError(t, err)

	_, err = sc.svc.Reject(asCaller(admin), first.ID)
	require.NoError(t, err)

	_, err = sc.create(stranger, at(8, 0), at(9, 0))
	assert.NoError(t, err)
}

func TestScenario_UpdateExcludesSelf(t *testing.T) {
	sc := newScenario(t)

	first, err := sc.create(owner, at(8, 0), at(10, 0))
	require.NoError(t, err)

	_, err = sc.create(stranger, at(11, 0), at(12, 0))
	require.NoError(t, err)

	start := at(9, 0)
	end := at(11, 30)

	updated, err := sc.svc.Update(asCaller(owner), dto.UpdateReservationRequest{StartTime: &start}, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, updated.Status)

	_, err = sc.svc.Update(asCaller(owner), dto.UpdateReservationRequest{EndTime: &end}, first.ID)
	assert.True(t, failure.Is(err, failure.KindConflict))
}

func TestScenario_ConcurrentCreatesNeverDoubleBook(t *testing.T) {
	sc := newScenario(t)

	const writers = 24

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			caller := gModel.Caller{ID: fmt.Sprintf("user-%d", i), Role: owner.Role}
			start := at(8, 0).Add(time.Duration(i%4) * 15 * time.Minute)

			_, err := sc.create(caller, start, start.Add(time.Hour))

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				succeeded++
			case failure.Is(err, failure.KindConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, writers-1, conflicts)

	blocking, err := sc.store.List(context.Background(), gDto.QueryParams{Page: 1, PageSize: 100},
		model.ListFilter{RoomID: activeRoom.ID, Status: model.StatusPending})
	require.NoError(t, err)

	for i := range blocking {
		for j := i + 1; j < len(blocking); j++ {
			assert.False(t, model.Overlaps(blocking[i].StartTime, blocking[i].EndTime, blocking[j].StartTime, blocking[j].EndTime))
		}
	}
}

func TestScenario_Pagination(t *testing.T) {
	sc := newScenario(t)

	for i := range 23 {
		start := at(8, 0).Add(time.Duration(i) * 30 * time.Minute)

		_, err := sc.create(owner, start, start.Add(30*time.Minute))
		require.NoError(t, err)
	}

	page, err := sc.svc.List(asCaller(stranger), gDto.QueryParams{Page: 3, PageSize: 10}, dto.ListReservationsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 23, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 3)

	again, err := sc.svc.List(asCaller(stranger), gDto.QueryParams{Page: 3, PageSize: 10}, dto.ListReservationsRequest{})
	require.NoError(t, err)
	assert.Equal(t, page, again)

	beyond, err := sc.svc.List(asCaller(stranger), gDto.QueryParams{Page: 4, PageSize: 10}, dto.ListReservationsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 23, beyond.Total)
	assert.Empty(t, beyond.Items)

	mine, err := sc.svc.Mine(asCaller(stranger), gDto.QueryParams{}, dto.ListReservationsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, mine.Total)
	assert.Equal(t, 1, mine.TotalPages)

	first, err := sc.svc.List(asCaller(stranger), gDto.QueryParams{Page: 1, PageSize: 2}, dto.ListReservationsRequest{})
	require.NoError(t, err)
	require.Len(t, first.Items, 2)
	assert.Less(t, first.Items[0].StartTime, first.Items[1].StartTime)
}
