// Package models provides the data structures used throughout the application.
package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is one supplier invoice to be paid by credit transfer.
type PaymentRecord struct {
	// Issuer is the creditor name; it also prefixes the end-to-end id.
	Issuer string
	// InvoiceNumber doubles as payment instruction id and structured remittance reference.
	InvoiceNumber int64
	Amount        decimal.Decimal
	// DateDue is the requested execution date as a UTC-midnight calendar date.
	DateDue       time.Time
	AccountNumber string
	Currency      string
}

// Money returns the instructed amount with its currency.
func (p PaymentRecord) Money() Money {
	return NewMoney(p.Amount, p.Currency)
}

// InvoiceRef returns the invoice number as rendered in identifiers and references.
func (p PaymentRecord) InvoiceRef() string {
	return strconv.FormatInt(p.InvoiceNumber, 10)
}

// WithDateDue returns a copy of the record with a different due date.
func (p PaymentRecord) WithDateDue(date time.Time) PaymentRecord {
	p.DateDue = date
	return p
}

// Amounts returns the amounts of the given payments in order.
func Amounts(payments []PaymentRecord) []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(payments))
	for i, p := range payments {
		amounts[i] = p.Amount
	}
	return amounts
}
