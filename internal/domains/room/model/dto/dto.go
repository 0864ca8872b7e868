package dto

import (
	"agendador/internal/domains/room/model"
	"agendador/shared"
	gDto "agendador/shared/dto"
)

type ListRoomsRequest struct {
	Name   string `json:"name"   validate:"omitempty,max=100"`
	Active *bool  `json:"active" validate:"omitempty"`
}

// ToFilter narrows to active rooms unless the caller asked otherwise.
func (l *ListRoomsRequest) ToFilter() gDto.FilterGroup {
	active := true
	if l.Active != nil {
		active = *l.Active
	}

	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    active,
				Table:    model.TableName,
			},
		},
	}

	if l.Name != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    l.Name,
			Table:    model.TableName,
		})
	}

	return group
}

type RoomResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Active   bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type ListRoomsResponse struct {
	Items      []RoomResponse `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

func (r *ListRoomsResponse) FromModels(models []model.Room, total int, params gDto.QueryParams) {
	r.Page = params.Page
	r.PageSize = params.PageSize
	r.Total = total
	r.TotalPages = shared.CalculateTotalPage(total, params.PageSize)

	r.Items = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
