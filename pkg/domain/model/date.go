package model

import (
	"errors"
	"time"
)

var ErrBadDate = errors.New("date must be in YYYY-MM-DD form")

const dateLayout = "2006-01-02"

// Date is a calendar day in ISO form ("2024-06-01"), with no time zone or
// time-of-day component. Overrides and deliveries are keyed on it.
type Date string

func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func Today() Date {
	return DateOf(time.Now())
}

func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

func (d Date) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
