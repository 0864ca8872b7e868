package dto_test

import (
	"agendador/internal/domains/reservation/model"
	"agendador/internal/domains/reservation/model/dto"
	"agendador/shared/constant"
	gDto "agendador/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	loc := time.FixedZone("UTC-03:00", -3*60*60)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	req := dto.CreateReservationRequest{
		RoomID:    "room-1",
		Title:     "Planning",
		StartTime: time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
		EndTime:   time.Date(2025, 3, 10, 10, 0, 0, 0, loc),
	}

	res := req.ToModel("user-1", model.StatusPending, "admin-1", now)

	require.NotEmpty(t, res.ID)
	assert.Equal(t, "user-1", res.RequesterID)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, time.UTC, res.StartTime.Location())
	assert.Equal(t, 12, res.StartTime.Hour())
	assert.Equal(t, "admin-1", res.CreatedBy)
	assert.Equal(t, now, res.ModifiedAt)
}

func TestUpdateReservationRequest_Apply(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	current := model.Reservation{
		ID:        "r1",
		RoomID:    "room-1",
		Title:     "Old",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    model.StatusPending,
	}

	tests := []struct {
		name    string
		req     dto.UpdateReservationRequest
		empty   bool
		changed []string
	}{
		{
			name:  "empty",
			req:   dto.UpdateReservationRequest{},
			empty: true,
		},
		{
			name:    "title only",
			req:     dto.UpdateReservationRequest{Title: ptr("New")},
			changed: []string{model.FieldTitle},
		},
		{
			name:    "same value is not a change",
			req:     dto.UpdateReservationRequest{Title: ptr("Old")},
			changed: []string{},
		},
		{
			name:    "clear description",
			req:     dto.UpdateReservationRequest{Description: ptr("")},
			changed: []string{},
		},
		{
			name:    "end moved",
			req:     dto.UpdateReservationRequest{EndTime: ptr(start.Add(2 * time.Hour))},
			changed: []string{model.FieldEndTime},
		},
		{
			name:    "room and status",
			req:     dto.UpdateReservationRequest{RoomID: ptr("room-2"), Status: ptr(model.StatusApproved)},
			changed: []string{model.FieldRoomID, model.FieldStatus},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.req.IsEmpty())

			next := tt.req.Apply(current)
			fields := dto.ChangedFields(current, next, "actor", start)

			assert.Len(t, fields, len(tt.changed)+2)
			assert.Equal(t, "actor", fields[constant.FieldModifiedBy])

			for _, col := range tt.changed {
				assert.Contains(t, fields, col)
			}
		})
	}
}

func TestListReservationsResponse_FromModels(t *testing.T) {
	models := make([]model.Reservation, 3)

	res := dto.ListReservationsResponse{}
	res.FromModels(models, 23, gDto.QueryParams{Page: 3, PageSize: 10})

	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 10, res.PageSize)
	assert.Equal(t, 23, res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Len(t, res.Items, 3)

	empty := dto.ListReservationsResponse{}
	empty.FromModels(nil, 0, gDto.QueryParams{Page: 1, PageSize: 10})

	assert.Equal(t, 1, empty.TotalPages)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}
