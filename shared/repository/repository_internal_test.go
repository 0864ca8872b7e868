package repository

import (
	"agendador/infras/otel/mocks"
	"agendador/shared/dto"
	"agendador/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

type booking struct {
	ID      string `db:"id"`
	RoomID  string `db:"room_id"`
	Notes   string `db:"-"`
	Scratch string
	model.Metadata
}

func newTestRepository() Repository[booking] {
	return NewRepository[booking]("booking", "bookings", "id", nil, mocks.NewOtel(),
		WithDefaultOrder("bookings.id ASC"))
}

func TestNewRepository_ColumnsFromTags(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, []string{"id", "room_id"}, repo.columns[:2])
	assert.NotContains(t, repo.columns, "-")
	assert.NotContains(t, repo.columns, "Scratch")
	assert.Greater(t, len(repo.columns), 2, "embedded metadata columns are included")
}

func TestSelectList(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, "bookings.id, bookings.room_id", repo.selectList([]string{"room_id", "id", "unknown"}))
	assert.Contains(t, repo.selectList(nil), "bookings.room_id")
}

func TestOrderClause(t *testing.T) {
	repo := newTestRepository()

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{name: "default", params: dto.QueryParams{}, want: "ORDER BY bookings.id ASC"},
		{name: "known column desc", params: dto.QueryParams{SortBy: "room_id", SortDir: dto.SortDirDesc}, want: "ORDER BY bookings.room_id DESC, bookings.id ASC"},
		{name: "unknown direction is ascending", params: dto.QueryParams{SortBy: "room_id", SortDir: "sideways"}, want: "ORDER BY bookings.room_id ASC, bookings.id ASC"},
		{name: "unknown column falls back", params: dto.QueryParams{SortBy: "1; DROP TABLE bookings"}, want: "ORDER BY bookings.id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderClause(tt.params))
		})
	}
}

func TestWhereClause(t *testing.T) {
	where, args := whereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.NotNil(t, args)

	where, args = whereClause(dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "room_id", Table: "bookings", Value: "room-1", Operator: dto.FilterOperatorEq},
	}})
	assert.Equal(t, "WHERE (bookings.room_id = :room_id)", where)
	assert.Equal(t, map[string]any{"room_id": "room-1"}, args)
}
