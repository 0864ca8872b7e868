package model

import "agendador/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldCapacity = "capacity"
	FieldActive   = "active"
)

// Room is master data owned outside this service. Reservations only read it.
type Room struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	Active   bool   `db:"active"`
	model.Metadata
}

// Found reports whether a lookup matched a row. Repositories return the zero Room on a miss.
func (r Room) Found() bool {
	return r.ID != ""
}

// Bookable reports whether new reservations may target the room.
func (r Room) Bookable() bool {
	return r.Found() && r.Active
}
