// Package bankday answers banking-day questions for one country's calendar.
//
// A banking day is Monday to Friday and not in the holiday set. Regional rules
// live entirely in the injected HolidaySet; this package knows only weekdays.
package bankday

import (
	"time"

	"fjacquet/pain-gen/internal/dateutils"
	"fjacquet/pain-gen/internal/painerror"
)

// HolidaySet is a membership test over calendar dates.
type HolidaySet interface {
	Contains(date time.Time) bool
}

type noHolidays struct{}

func (noHolidays) Contains(time.Time) bool { return false }

// Calendar is an immutable banking-day calendar.
type Calendar struct {
	holidays HolidaySet
}

// NewCalendar returns a calendar over the given holidays. A nil set means weekends only.
func NewCalendar(holidays HolidaySet) Calendar {
	if holidays == nil {
		holidays = noHolidays{}
	}
	return Calendar{holidays: holidays}
}

// IsBankingDay reports whether date is a weekday outside the holiday set.
func (c Calendar) IsBankingDay(date time.Time) bool {
	date = dateutils.DateOf(date)
	if dateutils.IsWeekend(date) {
		return false
	}
	return !c.set().Contains(date)
}

// NextBankingDay returns the first banking day strictly after the given date.
// The scan is unbounded; holiday sets are finite so it always terminates.
func (c Calendar) NextBankingDay(after time.Time) time.Time {
	candidate := dateutils.DateOf(after)
	for {
		candidate = candidate.AddDate(0, 0, 1)
		if c.IsBankingDay(candidate) {
			return candidate
		}
	}
}

// LastBankingDayOfMonth scans backward from the month's last day and returns
// the first banking day found.
func (c Calendar) LastBankingDayOfMonth(year int, month time.Month) (time.Time, error) {
	first := dateutils.StartOfMonth(year, month)
	for candidate := dateutils.EndOfMonth(year, month); !candidate.Before(first); candidate = candidate.AddDate(0, 0, -1) {
		if c.IsBankingDay(candidate) {
			return candidate, nil
		}
	}
	return time.Time{}, &painerror.CalendarError{
		Kind:  painerror.ErrNoBankingDayInMonth,
		Year:  year,
		Month: month,
	}
}

// zero-value Calendar behaves like NewCalendar(nil)
func (c Calendar) set() HolidaySet {
	if c.holidays == nil {
		return noHolidays{}
	}
	return c.holidays
}
