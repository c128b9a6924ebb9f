// Package painerror defines the error kinds raised while building payment files.
package painerror

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds. Match them with errors.Is; the typed errors below wrap them.
var (
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidCurrency       = errors.New("invalid currency")
	ErrInvalidInvoiceNumber  = errors.New("invalid invoice number")
	ErrDuplicatePaymentID    = errors.New("duplicate payment information id")
	ErrEmptyPaymentSet       = errors.New("empty payment set")
	ErrInvalidDebtor         = errors.New("invalid debtor")
	ErrNoBankingDayInMonth   = errors.New("no banking day in month")
	ErrInvertedBankingWindow = errors.New("inverted banking window")
	ErrUnknownCountry        = errors.New("unknown holiday calendar country")
)

// ValidationError reports an input record that cannot go into a document.
// Index is the payment position, or -1 when the problem is not tied to a payment.
type ValidationError struct {
	Kind  error
	Index int
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s='%s'", e.Kind, e.Field, e.Value)
	}
	return fmt.Sprintf("%v: payment %d: %s='%s'", e.Kind, e.Index, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// CalendarError reports a banking window that cannot be computed for a month.
type CalendarError struct {
	Kind    error
	Country string
	Year    int
	Month   time.Month
	Floor   time.Time
	Ceiling time.Time
}

func (e *CalendarError) Error() string {
	if e.Year == 0 {
		return fmt.Sprintf("%v: '%s'", e.Kind, e.Country)
	}
	if e.Floor.IsZero() || e.Ceiling.IsZero() {
		return fmt.Sprintf("%v: %s %04d-%02d", e.Kind, e.Country, e.Year, int(e.Month))
	}
	return fmt.Sprintf("%v: %s %04d-%02d: last banking day %s precedes next banking day %s",
		e.Kind, e.Country, e.Year, int(e.Month),
		e.Ceiling.Format("2006-01-02"), e.Floor.Format("2006-01-02"))
}

func (e *CalendarError) Unwrap() error {
	return e.Kind
}

// ParseError represents an error while reading an input file
type ParseError struct {
	Source string
	Row    int
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d: failed to parse %s='%s': %v",
		e.Source, e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format for its extension.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
