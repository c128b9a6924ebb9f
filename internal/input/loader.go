// Package input reads payment lists and debtor profiles from disk.
//
// Payments come from JSON (an array of objects), CSV or XLSX files with the
// columns issuer, invoice_number, amount, date_due, account_number and
// currency. The debtor profile is a TOML (or YAML) file with a [Debtor] table.
package input

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fjacquet/pain-gen/internal/currencyutils"
	"fjacquet/pain-gen/internal/dateutils"
	"fjacquet/pain-gen/internal/fileutils"
	"fjacquet/pain-gen/internal/logging"
	"fjacquet/pain-gen/internal/models"
	"fjacquet/pain-gen/internal/painerror"

	"github.com/shopspring/decimal"
)

// Column names shared by every payment format.
const (
	ColumnIssuer        = "issuer"
	ColumnInvoiceNumber = "invoice_number"
	ColumnAmount        = "amount"
	ColumnDateDue       = "date_due"
	ColumnAccountNumber = "account_number"
	ColumnCurrency      = "currency"
)

// Columns lists the payment columns in their conventional order.
var Columns = []string{
	ColumnIssuer,
	ColumnInvoiceNumber,
	ColumnAmount,
	ColumnDateDue,
	ColumnAccountNumber,
	ColumnCurrency,
}

// Supported payment file extensions.
const (
	FormatJSON = ".json"
	FormatCSV  = ".csv"
	FormatXLSX = ".xlsx"
)

// Loader reads input files and logs what it read.
type Loader struct {
	logger logging.Logger
}

// NewLoader returns a Loader logging through logger.
func NewLoader(logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Loader{logger: logger}
}

// LoadPayments reads a payment file, choosing the format by extension.
func (l *Loader) LoadPayments(path string) ([]models.PaymentRecord, error) {
	format := fileutils.Extension(path)
	log := l.logger.WithFields(
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldFormat, strings.TrimPrefix(format, ".")),
	)

	var (
		rows []rawPayment
		err  error
	)
	switch format {
	case FormatJSON:
		rows, err = readJSON(path)
	case FormatCSV:
		rows, err = readCSV(path)
	case FormatXLSX:
		rows, err = readXLSX(path)
	default:
		return nil, &painerror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "one of .json, .csv, .xlsx",
			Msg:            fmt.Sprintf("unsupported extension %q", format),
		}
	}
	if err != nil {
		log.WithError(err).Error("Failed to read payments")
		return nil, err
	}

	payments := make([]models.PaymentRecord, 0, len(rows))
	for _, row := range rows {
		p, err := row.toRecord(path)
		if err != nil {
			log.WithError(err).Error("Failed to parse payment")
			return nil, err
		}
		payments = append(payments, p)
	}

	log.Info("Loaded payments", logging.F(logging.FieldCount, len(payments)))
	return payments, nil
}

// rawPayment is one row as text, before conversion. Row is the 1-based
// position used in error messages.
type rawPayment struct {
	Row           int
	Issuer        string
	InvoiceNumber string
	Amount        string
	DateDue       string
	AccountNumber string
	Currency      string
}

func (r rawPayment) toRecord(source string) (models.PaymentRecord, error) {
	fail := func(field, value string, err error) error {
		return &painerror.ParseError{Source: source, Row: r.Row, Field: field, Value: value, Err: err}
	}

	invoice, err := strconv.ParseInt(strings.TrimSpace(r.InvoiceNumber), 10, 64)
	if err != nil {
		return models.PaymentRecord{}, fail(ColumnInvoiceNumber, r.InvoiceNumber, err)
	}

	amount, err := parseAmount(r.Amount)
	if err != nil {
		return models.PaymentRecord{}, fail(ColumnAmount, r.Amount, err)
	}

	due, err := parseDueDate(r.DateDue)
	if err != nil {
		return models.PaymentRecord{}, fail(ColumnDateDue, r.DateDue, err)
	}

	return models.PaymentRecord{
		Issuer:        strings.TrimSpace(r.Issuer),
		InvoiceNumber: invoice,
		Amount:        amount,
		DateDue:       due,
		AccountNumber: strings.TrimSpace(r.AccountNumber),
		Currency:      strings.TrimSpace(r.Currency),
	}, nil
}

// parseAmount keeps plain decimal literals exact and falls back to the
// locale-tolerant parser for values such as "1 234,50".
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if d, err := decimal.NewFromString(raw); err == nil {
		return d, nil
	}
	return currencyutils.ParseAmount(raw)
}

func parseDueDate(raw string) (time.Time, error) {
	date, _, err := dateutils.ParseDate(strings.TrimSpace(raw))
	return date, err
}
