package validator_test

import (
	"agendador/shared/failure"
	"agendador/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingForm struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
	Title  string `json:"title"   validate:"required,notblank"`
	Status string `json:"status"  validate:"omitempty,oneof=pending approved rejected cancelled"`
	Date   string `json:"date"    validate:"omitempty,localdate"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    bookingForm
		wantMsg string
	}{
		{
			name: "valid",
			data: bookingForm{RoomID: "4f1c7c7e-2d3a-4b8e-9a65-0c8b7a3f2e11", Title: "Daily", Status: "pending", Date: "2025-09-15"},
		},
		{
			name:    "missing room id uses json name",
			data:    bookingForm{Title: "Daily"},
			wantMsg: "room_id is required",
		},
		{
			name:    "blank title",
			data:    bookingForm{RoomID: "4f1c7c7e-2d3a-4b8e-9a65-0c8b7a3f2e11", Title: "   "},
			wantMsg: "title must not be blank",
		},
		{
			name:    "unknown status",
			data:    bookingForm{RoomID: "4f1c7c7e-2d3a-4b8e-9a65-0c8b7a3f2e11", Title: "Daily", Status: "done"},
			wantMsg: "status must be one of pending approved rejected cancelled",
		},
		{
			name:    "bad date",
			data:    bookingForm{RoomID: "4f1c7c7e-2d3a-4b8e-9a65-0c8b7a3f2e11", Title: "Daily", Date: "15-09-2025"},
			wantMsg: "date must be a date formatted as YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.True(t, failure.Is(err, failure.KindInvalidInput))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		var form bookingForm

		err := validator.Validate(strings.NewReader(`{"room_id":"4f1c7c7e-2d3a-4b8e-9a65-0c8b7a3f2e11","title":"Sync"}`), &form)

		assert.NoError(t, err)
		assert.Equal(t, "Sync", form.Title)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		var form bookingForm

		err := validator.Validate(strings.NewReader(`{"title":`), &form)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var form bookingForm

		err := validator.Validate(strings.NewReader(`{"title":"x","owner":"me"}`), &form)

		assert.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindInvalidInput))
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-09-15", "localdate"))
	assert.Error(t, validator.ValidateVar("2025-13-01", "localdate"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
