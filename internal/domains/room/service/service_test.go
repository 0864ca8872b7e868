package service_test

import (
	"agendador/config"
	"agendador/infras/otel/mocks"
	roomMocks "agendador/internal/domains/room/mocks"
	"agendador/internal/domains/room/model"
	"agendador/internal/domains/room/model/dto"
	"agendador/internal/domains/room/service"
	"agendador/shared/cache"
	gDto "agendador/shared/dto"
	"agendador/shared/failure"
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T, repo *roomMocks.MockRoom) service.Room {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Reservation.DefaultPageSize = 10
	cfg.Cache.TTL = 60

	return service.New(repo, cfg, cache.NewRedisCache(client, mocks.NewOtel()), mocks.NewOtel())
}

var (
	auditorium = model.Room{ID: "room-1", Name: "Auditório", Capacity: 80, Active: true}
	smallRoom  = model.Room{ID: "room-2", Name: "Sala 2", Capacity: 8, Active: true}
	closedRoom = model.Room{ID: "room-9", Name: "Sala 9"}
)

func toResponse(m model.Room) dto.RoomResponse {
	var res dto.RoomResponse
	res.FromModel(m)

	return res
}

func TestList(t *testing.T) {
	inactive := false

	tests := []struct {
		name      string
		params    gDto.QueryParams
		req       dto.ListRoomsRequest
		setupMock func(repo *roomMocks.MockRoom)
		want      dto.ListRoomsResponse
		wantErr   bool
	}{
		{
			name:   "active rooms by default",
			params: gDto.QueryParams{Page: 1},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						require.Len(t, filter.Filters, 1)
						assert.Equal(t, true, filter.Filters[0].(gDto.Filter).Value)

						return 2, nil
					})
				repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{Page: 1, PageSize: 10}, gomock.Any()).
					Return([]model.Room{auditorium, smallRoom}, nil)
			},
			want: dto.ListRoomsResponse{
				Items:      []dto.RoomResponse{toResponse(auditorium), toResponse(smallRoom)},
				Page:       1,
				PageSize:   10,
				Total:      2,
				TotalPages: 1,
			},
		},
		{
			name:   "inactive rooms filtered by name",
			params: gDto.QueryParams{Page: 2, PageSize: 5},
			req:    dto.ListRoomsRequest{Name: "sala", Active: &inactive},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						require.Len(t, filter.Filters, 2)
						assert.Equal(t, false, filter.Filters[0].(gDto.Filter).Value)
						assert.Equal(t, gDto.FilterOperatorLike, filter.Filters[1].(gDto.Filter).Operator)

						return 6, nil
					})
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Room{closedRoom}, nil)
			},
			want: dto.ListRoomsResponse{
				Items:      []dto.RoomResponse{toResponse(closedRoom)},
				Page:       2,
				PageSize:   5,
				Total:      6,
				TotalPages: 2,
			},
		},
		{
			name:   "count failure",
			params: gDto.QueryParams{Page: 1},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name:   "get all failure",
			params: gDto.QueryParams{Page: 1},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := roomMocks.NewMockRoom(ctrl)
			tt.setupMock(repo)

			res, err := newService(t, repo).List(context.Background(), tt.params, tt.req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		want      dto.RoomResponse
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(auditorium, nil)
			},
			want: toResponse(auditorium),
		},
		{
			name: "not found",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantKind: failure.KindNotFound,
			wantErr:  true,
		},
		{
			name: "repository failure",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("db down"))
			},
			wantKind: failure.KindInternal,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := roomMocks.NewMockRoom(ctrl)
			tt.setupMock(repo)

			res, err := newService(t, repo).Get(context.Background(), "room-1")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestGet_TracesReturnedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := roomMocks.NewMockRoom(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	tracer := mocks.NewRecorder()
	svc := service.New(repo, &config.Config{}, cache.NewRedisCache(client, mocks.NewOtel()), tracer)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)

	traced := tracer.Errors()
	require.Len(t, traced, 1)
	assert.True(t, failure.Is(traced[0], failure.KindNotFound))
}
