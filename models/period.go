// models/period.go - Period Boundary Calculations
package models

import (
	"errors"
	"time"
)

// ErrUnknownRecurrence flags a challenge whose recurrence type is missing or
// unrecognized. This is a data-integrity problem, not a user error, and it is
// never silently treated as "outside the period".
var ErrUnknownRecurrence = errors.New("unknown recurrence type")

// DateOnly strips the clock portion so period math works on calendar days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AnchorDate returns the canonical start date of the period containing ref:
// the day itself for daily, the Monday on or before it for weekly, the first
// of the month for monthly.
func AnchorDate(recurrence RecurrenceType, ref time.Time) (time.Time, error) {
	d := DateOnly(ref)
	switch recurrence {
	case RecurrenceDaily:
		return d, nil
	case RecurrenceWeekly:
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset), nil
	case RecurrenceMonthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	default:
		return time.Time{}, ErrUnknownRecurrence
	}
}

// PeriodEnd returns the exclusive upper bound of the period starting at anchor.
func PeriodEnd(recurrence RecurrenceType, anchor time.Time) (time.Time, error) {
	a := DateOnly(anchor)
	switch recurrence {
	case RecurrenceDaily:
		return a.AddDate(0, 0, 1), nil
	case RecurrenceWeekly:
		return a.AddDate(0, 0, 7), nil
	case RecurrenceMonthly:
		return a.AddDate(0, 1, 0), nil
	default:
		return time.Time{}, ErrUnknownRecurrence
	}
}

// WithinPeriod reports whether date falls in [anchor, PeriodEnd(anchor)).
func WithinPeriod(recurrence RecurrenceType, anchor, date time.Time) (bool, error) {
	end, err := PeriodEnd(recurrence, anchor)
	if err != nil {
		return false, err
	}
	d := DateOnly(date)
	return !d.Before(DateOnly(anchor)) && d.Before(end), nil
}
