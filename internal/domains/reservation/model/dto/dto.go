package dto

import (
	"agendador/internal/domains/reservation/model"
	"agendador/shared"
	"agendador/shared/constant"
	gDto "agendador/shared/dto"
	gModel "agendador/shared/model"
	"agendador/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID      string    `json:"room_id"      validate:"required,notblank"`
	RequesterID string    `json:"requester_id" validate:"omitempty,notblank"`
	Title       string    `json:"title"        validate:"required,notblank,max=200"`
	Description string    `json:"description"  validate:"omitempty,max=2000"`
	StartTime   time.Time `json:"start_time"   validate:"required"`
	EndTime     time.Time `json:"end_time"     validate:"required,gtfield=StartTime"`
	Status      string    `json:"status"       validate:"omitempty,oneof=pending approved"`
}

func (c *CreateReservationRequest) ToModel(requesterID, status, actor string, now time.Time) model.Reservation {
	return model.Reservation{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		RequesterID: requesterID,
		Title:       c.Title,
		Description: c.Description,
		StartTime:   c.StartTime.UTC(),
		EndTime:     c.EndTime.UTC(),
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// UpdateReservationRequest is a partial update. Only non-nil fields are applied.
type UpdateReservationRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,notblank,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	RoomID      *string    `json:"room_id"     validate:"omitempty,notblank"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=pending approved rejected cancelled"`
}

func (u *UpdateReservationRequest) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.StartTime == nil &&
		u.EndTime == nil && u.RoomID == nil && u.Status == nil
}

// Apply returns current with the requested fields overwritten.
func (u *UpdateReservationRequest) Apply(current model.Reservation) model.Reservation {
	next := current

	if u.Title != nil {
		next.Title = *u.Title
	}

	if u.Description != nil {
		next.Description = *u.Description
	}

	if u.StartTime != nil {
		next.StartTime = u.StartTime.UTC()
	}

	if u.EndTime != nil {
		next.EndTime = u.EndTime.UTC()
	}

	if u.RoomID != nil {
		next.RoomID = *u.RoomID
	}

	if u.Status != nil {
		next.Status = *u.Status
	}

	return next
}

// ChangedFields diffs next against current and returns the columns to write.
func ChangedFields(current, next model.Reservation, actor string, now time.Time) map[string]any {
	fields := map[string]any{}

	if next.Title != current.Title {
		fields[model.FieldTitle] = next.Title
	}

	if next.Description != current.Description {
		fields[model.FieldDescription] = next.Description
	}

	if !next.StartTime.Equal(current.StartTime) {
		fields[model.FieldStartTime] = next.StartTime
	}

	if !next.EndTime.Equal(current.EndTime) {
		fields[model.FieldEndTime] = next.EndTime
	}

	if next.RoomID != current.RoomID {
		fields[model.FieldRoomID] = next.RoomID
	}

	if next.Status != current.Status {
		fields[model.FieldStatus] = next.Status
	}

	fields[constant.FieldModifiedAt] = now
	fields[constant.FieldModifiedBy] = actor

	return fields
}

type ListReservationsRequest struct {
	RequesterID string `json:"requester_id" validate:"omitempty"`
	RoomID      string `json:"room_id"      validate:"omitempty"`
	Status      string `json:"status"       validate:"omitempty,oneof=pending approved rejected cancelled"`
	Date        string `json:"date"         validate:"omitempty,localdate"`
}

type AvailabilityRequest struct {
	RoomID    string    `json:"room_id"    validate:"required,notblank"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time"   validate:"required,gtfield=StartTime"`
	ExcludeID string    `json:"exclude_id" validate:"omitempty"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type ReservationResponse struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	RequesterID string `json:"requester_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	UpdatedAt   string `json:"updated_at"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RequesterID = model.RequesterID
	r.Title = model.Title
	r.Description = model.Description
	r.StartTime = timezone.Format(model.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(model.EndTime, constant.DateFormat)
	r.Status = model.Status
	r.UpdatedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type ListReservationsResponse struct {
	Items      []ReservationResponse `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"total_pages"`
}

func (r *ListReservationsResponse) FromModels(models []model.Reservation, total int, params gDto.QueryParams) {
	r.Page = params.Page
	r.PageSize = params.PageSize
	r.Total = total
	r.TotalPages = shared.CalculateTotalPage(total, params.PageSize)

	r.Items = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
