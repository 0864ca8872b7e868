package timezone

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	localDateLayout = "2006-01-02"
	displayLayout   = "02/01/2006, 15:04"
)

var (
	ErrInvalidLocalDate = errors.New("invalid local date, expected YYYY-MM-DD")

	localDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// DayRange returns the half-open UTC range [start, end) covering localDate
// at the given offset from UTC.
func DayRange(localDate string, offsetMinutes int) (time.Time, time.Time, error) {
	if !localDatePattern.MatchString(localDate) {
		return time.Time{}, time.Time{}, ErrInvalidLocalDate
	}

	day, err := time.ParseInLocation(localDateLayout, localDate, FixedZone(offsetMinutes))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidLocalDate, localDate)
	}

	start := day.UTC()
	end := day.AddDate(0, 0, 1).UTC()

	return start, end, nil
}

// FormatDisplay renders t as "dd/mm/yyyy, HH:MM" shifted by offsetMinutes.
func FormatDisplay(t time.Time, offsetMinutes int) string {
	return t.UTC().Add(time.Duration(offsetMinutes) * time.Minute).Format(displayLayout)
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return Now()
}

func NewClock() Clock {
	return systemClock{}
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
