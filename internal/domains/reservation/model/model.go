package model

import (
	"agendador/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldRequesterID = "requester_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldStatus      = "status"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// transitions lists every status change the lifecycle allows.
var transitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

type Reservation struct {
	ID          string    `db:"id"`
	RoomID      string    `db:"room_id"`
	RequesterID string    `db:"requester_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	Status      string    `db:"status"`
	model.Metadata
}

// Blocking reports whether r occupies its room.
func (r Reservation) Blocking() bool {
	return IsBlocking(r.Status)
}

// Ended reports whether the reservation interval is over at now.
func (r Reservation) Ended(now time.Time) bool {
	return !now.Before(r.EndTime)
}

func (r Reservation) OwnedBy(userID string) bool {
	return r.RequesterID == userID
}

func IsBlocking(status string) bool {
	return status == StatusPending || status == StatusApproved
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// Overlaps compares half-open intervals, so touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ConflictQuery asks whether [Start, End) collides with a blocking reservation of RoomID.
type ConflictQuery struct {
	RoomID    string
	Start     time.Time
	End       time.Time
	ExcludeID string
}

// ListFilter narrows a reservation listing. Zero fields are ignored.
// From and To bound the listing to reservations overlapping [From, To).
type ListFilter struct {
	RequesterID string
	RoomID      string
	Status      string
	From        time.Time
	To          time.Time
}

func (f ListFilter) HasRange() bool {
	return !f.From.IsZero() && !f.To.IsZero()
}

// Match applies the filter to a single reservation.
func (f ListFilter) Match(r Reservation) bool {
	if f.RequesterID != "" && r.RequesterID != f.RequesterID {
		return false
	}

	if f.RoomID != "" && r.RoomID != f.RoomID {
		return false
	}

	if f.Status != "" && r.Status != f.Status {
		return false
	}

	if f.HasRange() && !Overlaps(r.StartTime, r.EndTime, f.From, f.To) {
		return false
	}

	return true
}

// RoomCount aggregates reservations of one room by status.
type RoomCount struct {
	RoomID    string `db:"room_id"`
	Total     int    `db:"total"`
	Pending   int    `db:"pending"`
	Approved  int    `db:"approved"`
	Rejected  int    `db:"rejected"`
	Cancelled int    `db:"cancelled"`
}
