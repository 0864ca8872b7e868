package service_test

import (
	"agendador/config"
	"agendador/infras/otel/mocks"
	s3Mocks "agendador/infras/s3/mocks"
	"agendador/internal/domains/report/model"
	"agendador/internal/domains/report/model/dto"
	"agendador/internal/domains/report/service"
	resMocks "agendador/internal/domains/reservation/mocks"
	resModel "agendador/internal/domains/reservation/model"
	roomMocks "agendador/internal/domains/room/mocks"
	roomModel "agendador/internal/domains/room/model"
	"agendador/shared/cache"
	"agendador/shared/constant"
	"agendador/shared/timezone"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 9, 15, 12, 30, 0, 0, time.UTC)

type fixture struct {
	repo    *resMocks.MockReservation
	rooms   *roomMocks.MockRoom
	storage *s3Mocks.MockS3
	svc     service.Report
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}

	f := &fixture{
		repo:    resMocks.NewMockReservation(ctrl),
		rooms:   roomMocks.NewMockRoom(ctrl),
		storage: s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.repo, f.rooms, f.storage, timezone.FixedClock(now), cfg,
		cache.NewRedisCache(client, mocks.NewOtel()), mocks.NewOtel())

	return f
}

func (f *fixture) expectData() {
	f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{ID: "room-1", Name: "Auditório"},
			{ID: "room-2", Name: "Sala 2"},
		}, nil)
	f.repo.EXPECT().CountByRoom(gomock.Any()).
		Return([]resModel.RoomCount{
			{RoomID: "room-1", Total: 3, Pending: 1, Approved: 1, Cancelled: 1},
		}, nil)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantErr   bool
		check     func(t *testing.T, res dto.ReportResponse)
	}{
		{
			name:      "rooms without reservations are listed",
			setupMock: func(f *fixture) { f.expectData() },
			check: func(t *testing.T, res dto.ReportResponse) {
				require.Len(t, res.Rooms, 2)
				assert.Equal(t, 3, res.Total)
				assert.Equal(t, model.Row{
					RoomID: "room-1", RoomName: "Auditório", Total: 3, Pending: 1, Approved: 1, Cancelled: 1,
				}, res.Rooms[0])
				assert.Equal(t, model.Row{RoomID: "room-2", RoomName: "Sala 2"}, res.Rooms[1])
				assert.Equal(t, timezone.Format(now, constant.DateFormat), res.GeneratedAt)
			},
		},
		{
			name: "counts for unknown rooms fall back to the id",
			setupMock: func(f *fixture) {
				f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().CountByRoom(gomock.Any()).
					Return([]resModel.RoomCount{{RoomID: "room-9", Total: 1, Rejected: 1}}, nil)
			},
			check: func(t *testing.T, res dto.ReportResponse) {
				require.Len(t, res.Rooms, 1)
				assert.Equal(t, "room-9", res.Rooms[0].RoomName)
				assert.Equal(t, 1, res.Rooms[0].Rejected)
			},
		},
		{
			name: "room lookup fails",
			setupMock: func(f *fixture) {
				f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "count fails",
			setupMock: func(f *fixture) {
				f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().CountByRoom(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(t.Context())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestGet_PagesThroughRooms(t *testing.T) {
	f := newFixture(t)

	full := make([]roomModel.Room, 100)
	for i := range full {
		full[i] = roomModel.Room{ID: "room-a", Name: "A"}
	}

	gomock.InOrder(
		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(full, nil),
		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]roomModel.Room{{ID: "room-b", Name: "B"}}, nil),
	)
	f.repo.EXPECT().CountByRoom(gomock.Any()).Return(nil, nil)

	res, err := f.svc.Get(t.Context())
	require.NoError(t, err)
	assert.Len(t, res.Rooms, 101)
}

func TestExport(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ExportRequest
		setupMock func(f *fixture)
		wantErr   bool
		format    string
	}{
		{
			name: "defaults to csv",
			setupMock: func(f *fixture) {
				f.expectData()
				f.storage.EXPECT().
					UploadFileBytes(gomock.Any(), model.ExportDirectory, "reservations-20250915-123000.csv", "text/csv", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, _ string, data []byte) (string, error) {
						assert.True(t, strings.HasPrefix(string(data), strings.Join(model.Header, ",")))

						return "https://bucket/reports/reservations-20250915-123000.csv", nil
					})
			},
			format: model.FormatCSV,
		},
		{
			name: "xlsx",
			req:  dto.ExportRequest{Format: model.FormatXLSX},
			setupMock: func(f *fixture) {
				f.expectData()
				f.storage.EXPECT().
					UploadFileBytes(gomock.Any(), model.ExportDirectory, "reservations-20250915-123000.xlsx", gomock.Any(), gomock.Any()).
					Return("https://bucket/reports/reservations-20250915-123000.xlsx", nil)
			},
			format: model.FormatXLSX,
		},
		{
			name: "upload fails",
			setupMock: func(f *fixture) {
				f.expectData()
				f.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Export(t.Context(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.format, res.Format)
			assert.Contains(t, res.URL, "reservations-20250915-123000."+tt.format)
		})
	}
}
