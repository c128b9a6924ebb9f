// Package duedate moves requested execution dates into the processable window
// of the current month.
package duedate

import (
	"errors"
	"time"

	"fjacquet/pain-gen/internal/bankday"
	"fjacquet/pain-gen/internal/dateutils"
	"fjacquet/pain-gen/internal/models"
	"fjacquet/pain-gen/internal/painerror"
)

// Window is the closed interval [Floor, Ceiling] of acceptable execution dates.
type Window struct {
	// Floor is the next banking day after today.
	Floor time.Time
	// Ceiling is the last banking day of today's month.
	Ceiling time.Time
}

// NewWindow computes the window once for a run. Every payment of the run is
// clamped against the same anchors.
func NewWindow(cal bankday.Calendar, today time.Time) (Window, error) {
	today = dateutils.DateOf(today)

	floor := cal.NextBankingDay(today)
	ceiling, err := cal.LastBankingDayOfMonth(today.Year(), today.Month())
	if err != nil {
		return Window{}, err
	}

	if ceiling.Before(floor) {
		return Window{}, &painerror.CalendarError{
			Kind:    painerror.ErrInvertedBankingWindow,
			Year:    today.Year(),
			Month:   today.Month(),
			Floor:   floor,
			Ceiling: ceiling,
		}
	}

	return Window{Floor: floor, Ceiling: ceiling}, nil
}

// Clamp returns due moved into the window. Dates on a boundary resolve to it.
func (w Window) Clamp(due time.Time) time.Time {
	due = dateutils.DateOf(due)
	switch {
	case !due.After(w.Floor):
		return w.Floor
	case !due.Before(w.Ceiling):
		return w.Ceiling
	default:
		return due
	}
}

// Adjust returns a copy of payments with every due date clamped.
func (w Window) Adjust(payments []models.PaymentRecord) []models.PaymentRecord {
	adjusted := make([]models.PaymentRecord, len(payments))
	for i, p := range payments {
		adjusted[i] = p.WithDateDue(w.Clamp(p.DateDue))
	}
	return adjusted
}

// WithCountry tags a calendar error with the country whose calendar produced it.
func WithCountry(err error, country string) error {
	var calErr *painerror.CalendarError
	if errors.As(err, &calErr) {
		tagged := *calErr
		tagged.Country = country
		return &tagged
	}
	return err
}
