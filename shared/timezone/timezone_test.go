package timezone_test

import (
	"agendador/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRange(t *testing.T) {
	tests := []struct {
		name          string
		date          string
		offsetMinutes int
		wantStart     time.Time
		wantEnd       time.Time
		wantErr       bool
	}{
		{
			name:          "utc day",
			date:          "2025-09-15",
			offsetMinutes: 0,
			wantStart:     time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:       time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "negative offset shifts forward",
			date:          "2025-09-15",
			offsetMinutes: -180,
			wantStart:     time.Date(2025, 9, 15, 3, 0, 0, 0, time.UTC),
			wantEnd:       time.Date(2025, 9, 16, 3, 0, 0, 0, time.UTC),
		},
		{
			name:          "positive offset with minutes",
			date:          "2025-01-01",
			offsetMinutes: 330,
			wantStart:     time.Date(2024, 12, 31, 18, 30, 0, 0, time.UTC),
			wantEnd:       time.Date(2025, 1, 1, 18, 30, 0, 0, time.UTC),
		},
		{
			name:          "leap day",
			date:          "2024-02-29",
			offsetMinutes: 0,
			wantStart:     time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "wrong layout",
			date:    "15/09/2025",
			wantErr: true,
		},
		{
			name:    "impossible date",
			date:    "2025-02-30",
			wantErr: true,
		},
		{
			name:    "empty",
			date:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := timezone.DayRange(tt.date, tt.offsetMinutes)
			if tt.wantErr {
				assert.ErrorIs(t, err, timezone.ErrInvalidLocalDate)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.wantStart.Equal(start), "start: want %s got %s", tt.wantStart, start)
			assert.True(t, tt.wantEnd.Equal(end), "end: want %s got %s", tt.wantEnd, end)
			assert.Equal(t, time.UTC, start.Location())
		})
	}
}

func TestFormatDisplay(t *testing.T) {
	instant := time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		input         time.Time
		offsetMinutes int
		expected      string
	}{
		{name: "utc", input: instant, offsetMinutes: 0, expected: "15/09/2025, 08:00"},
		{name: "sao paulo", input: instant, offsetMinutes: -180, expected: "15/09/2025, 05:00"},
		{name: "crosses midnight backwards", input: time.Date(2025, 9, 15, 1, 30, 0, 0, time.UTC), offsetMinutes: -180, expected: "14/09/2025, 22:30"},
		{name: "input location ignored", input: instant.In(time.FixedZone("X", 7*3600)), offsetMinutes: 60, expected: "15/09/2025, 09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.FormatDisplay(tt.input, tt.offsetMinutes))
		})
	}
}

func TestFixedZone(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.FixedZone(0))
	assert.Equal(t, "UTC-03:00", timezone.FixedZone(-180).String())
	assert.Equal(t, "UTC+05:30", timezone.FixedZone(330).String())
}

func TestClock(t *testing.T) {
	fixed := time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, fixed, timezone.FixedClock(fixed).Now())
	assert.False(t, timezone.NewClock().Now().IsZero())
	assert.Equal(t, time.UTC, timezone.Now().Location())
}
