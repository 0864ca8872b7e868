package model_test

import (
	"agendador/internal/domains/room/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_Bookable(t *testing.T) {
	tests := []struct {
		name     string
		room     model.Room
		found    bool
		bookable bool
	}{
		{name: "miss", room: model.Room{}},
		{name: "inactive", room: model.Room{ID: "room-1"}, found: true},
		{name: "active", room: model.Room{ID: "room-1", Active: true}, found: true, bookable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.found, tt.room.Found())
			assert.Equal(t, tt.bookable, tt.room.Bookable())
		})
	}
}
