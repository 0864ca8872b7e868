package timezone

import (
	"agendador/config"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const secondsPerMinute = 60

var (
	appLocation      *time.Location
	appOffsetMinutes int
)

func init() {
	cfg := config.Get()

	appOffsetMinutes = cfg.Reservation.ReferenceOffsetMinutes
	appLocation = FixedZone(appOffsetMinutes)

	log.Info().
		Int("offset_minutes", appOffsetMinutes).
		Str("location", appLocation.String()).
		Msg("Application reference offset initialized")
}

// FixedZone returns a location with a constant UTC offset and no DST rules.
func FixedZone(offsetMinutes int) *time.Location {
	if offsetMinutes == 0 {
		return time.UTC
	}

	sign := "+"
	abs := offsetMinutes

	if offsetMinutes < 0 {
		sign = "-"
		abs = -offsetMinutes
	}

	name := fmt.Sprintf("UTC%s%02d:%02d", sign, abs/secondsPerMinute, abs%secondsPerMinute)

	return time.FixedZone(name, offsetMinutes*secondsPerMinute)
}

// Now returns the current instant in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// ToAppTime converts a time to the application reference offset
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		return t.UTC()
	}

	return t.In(appLocation)
}

// GetLocation returns the application reference location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// OffsetMinutes returns the configured reference offset.
func OffsetMinutes() int {
	return appOffsetMinutes
}

// Format formats t in the application reference offset.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// AppDayRange is DayRange at the configured reference offset.
func AppDayRange(localDate string) (time.Time, time.Time, error) {
	return DayRange(localDate, appOffsetMinutes)
}

// AppFormatDisplay is FormatDisplay at the configured reference offset.
func AppFormatDisplay(t time.Time) string {
	return FormatDisplay(t, appOffsetMinutes)
}
