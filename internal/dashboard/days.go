package dashboard

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/domain"
)

// MaxDaysBack bounds how far the day navigation may step into the past.
const MaxDaysBack = 30

var ErrDayOutOfRange = goerr.New("day outside the navigable window")

// Midnight truncates t to the start of its UTC day.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckDay accepts days from today back to MaxDaysBack days ago.
func CheckDay(day, today time.Time) error {
	day, today = Midnight(day), Midnight(today)
	if day.After(today) || day.Before(today.AddDate(0, 0, -MaxDaysBack)) {
		return goerr.Wrap(ErrDayOutOfRange, "check day",
			goerr.V("day", day.Format(domain.DateLayout)),
			goerr.V("today", today.Format(domain.DateLayout)))
	}
	return nil
}

// ParseDay reads YYYY-MM-DD; empty means today.
func ParseDay(s string, today time.Time) (time.Time, error) {
	if s == "" {
		return Midnight(today), nil
	}
	day, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "parse day", goerr.V("day", s))
	}
	return day, nil
}

// Step moves day by delta days, staying inside the window.
func Step(day, today time.Time, delta int) (time.Time, bool) {
	next := Midnight(day).AddDate(0, 0, delta)
	if CheckDay(next, today) != nil {
		return Midnight(day), false
	}
	return next, true
}
