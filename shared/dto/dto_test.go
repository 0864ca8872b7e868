package dto_test

import (
	"agendador/shared/dto"
	"agendador/shared/failure"
	"agendador/shared/model"
	"agendador/shared/timezone"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, timezone.Format(createdAt, time.RFC3339), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, time.RFC3339), metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestMetadata_FromModelOmitsZeroTimes(t *testing.T) {
	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedBy: "seed"})

	assert.Empty(t, metadata.CreatedAt)
	assert.Empty(t, metadata.ModifiedAt)
	assert.Equal(t, "seed", metadata.CreatedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name        string
		queryParams map[string]string
		expected    dto.QueryParams
		wantErr     error
	}{
		{
			name:        "defaults",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{Page: 1, PageSize: 10},
		},
		{
			name:        "explicit values",
			queryParams: map[string]string{"page": "3", "page_size": "25", "sort_dir": "desc"},
			expected:    dto.QueryParams{Page: 3, PageSize: 25, SortDir: dto.SortDirDesc},
		},
		{
			name:        "limit alias",
			queryParams: map[string]string{"limit": "5"},
			expected:    dto.QueryParams{Page: 1, PageSize: 5},
		},
		{
			name:        "clamps values below one",
			queryParams: map[string]string{"page": "0", "page_size": "-4"},
			expected:    dto.QueryParams{Page: 1, PageSize: 1},
		},
		{
			name:        "non numeric page",
			queryParams: map[string]string{"page": "first"},
			wantErr:     failure.InvalidPageParam,
		},
		{
			name:        "non numeric page size",
			queryParams: map[string]string{"page_size": "many"},
			wantErr:     failure.InvalidPageSizeParam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			req := httptest.NewRequest("GET", "/v1/reservations?"+query.Encode(), nil)

			params := dto.QueryParams{}
			err := params.FromRequest(req, 10)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	params := dto.QueryParams{Page: 4, PageSize: 10}

	assert.Equal(t, 30, params.Offset())
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq, Table: "reservations"},
			dto.Filter{ArgName: "day_end", Field: "start_time", Value: 2, Operator: dto.FilterOperatorLess},
			dto.Filter{ArgName: "day_start", Field: "end_time", Value: 1, Operator: dto.FilterOperatorGreater},
			dto.Filter{Field: "status", Value: []string{"pending", "approved"}, Operator: dto.FilterOperatorIn},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(reservations.room_id = :room_id AND start_time < :day_end AND end_time > :day_start AND status IN (:status_0, :status_1))", where)
	assert.Equal(t, map[string]any{
		"room_id":   "r1",
		"day_end":   2,
		"day_start": 1,
		"status_0":  "pending",
		"status_1":  "approved",
	}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "name", Value: "50%_off", Operator: dto.FilterOperatorLike, Table: "rooms"},
			wantWhere: `LOWER(rooms.name) LIKE LOWER(:name) ESCAPE '\'`,
			wantArgs:  map[string]any{"name": `%50\%\_off%`},
		},
		{
			name:      "in with an empty slice matches nothing",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with a scalar binds it",
			filter:    dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorIn},
			wantWhere: "status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{ArgName: "exclude_id", Field: "id", Value: "r1", Operator: dto.FilterOperatorNotEq},
			wantWhere: "id != :exclude_id",
			wantArgs:  map[string]any{"exclude_id": "r1"},
		},
		{
			name:      "unknown operator is dropped",
			filter:    dto.Filter{Field: "id", Value: "r1", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_NestedAndDefaults(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "id", Value: "x", Operator: "between"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "a", Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "b", Field: "room_id", Value: "r2", Operator: dto.FilterOperatorEq},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(active = :active AND (room_id = :a OR room_id = :b))", where)
	assert.Equal(t, map[string]any{"active": true, "a": "r1", "b": "r2"}, args)
}
