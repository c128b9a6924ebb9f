// Package generator runs one payment file generation: it resolves the
// debtor's holiday calendar, moves due dates into the banking window, builds
// the pain.001 document and renders it.
package generator

import (
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/pain-gen/internal/bankday"
	"fjacquet/pain-gen/internal/dateutils"
	"fjacquet/pain-gen/internal/duedate"
	"fjacquet/pain-gen/internal/fileutils"
	"fjacquet/pain-gen/internal/holidays"
	"fjacquet/pain-gen/internal/logging"
	"fjacquet/pain-gen/internal/models"
	"fjacquet/pain-gen/internal/pain"
	"fjacquet/pain-gen/internal/painxml"
	"fjacquet/pain-gen/internal/validation"
)

// Options control rendering and validation.
type Options struct {
	StripIDSeparators bool
	StrictValidation  bool
	IndentWidth       int
	FilePrefix        string
}

// Request is the input of one run. Now is read once by the caller and used
// for the banking window, the message id and the creation timestamp.
type Request struct {
	Debtor   models.DebtorProfile
	Payments []models.PaymentRecord
	Now      time.Time
}

// Adjustment records one due date that was moved into the window.
type Adjustment struct {
	Index         int
	InvoiceNumber int64
	From          time.Time
	To            time.Time
}

// Result is a generated file, not yet written.
type Result struct {
	Document    pain.Document
	Window      duedate.Window
	Payments    []models.PaymentRecord
	Adjustments []Adjustment
	XML         []byte
	FileName    string
}

// Generator turns requests into rendered documents.
type Generator struct {
	holidays   holidays.Provider
	serializer *painxml.Serializer
	opts       Options
	logger     logging.Logger
}

// New returns a Generator resolving calendars through provider.
func New(provider holidays.Provider, opts Options, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{
		holidays:   provider,
		serializer: painxml.NewSerializer(opts.IndentWidth),
		opts:       opts,
		logger:     logger,
	}
}

// Generate validates the inputs, clamps due dates and renders the document.
// Nothing is returned but the error when any step fails.
func (g *Generator) Generate(req Request) (Result, error) {
	log := g.logger.WithField(logging.FieldCountry, req.Debtor.Country)

	if err := validation.ValidateDebtor(req.Debtor, g.opts.StrictValidation); err != nil {
		return Result{}, err
	}
	if err := pain.Validate(req.Payments); err != nil {
		return Result{}, err
	}

	window, err := g.Window(req.Debtor.Country, req.Now)
	if err != nil {
		return Result{}, err
	}
	log.Debug("Banking window resolved",
		logging.F(logging.FieldFloor, dateutils.ToISODate(window.Floor)),
		logging.F(logging.FieldCeiling, dateutils.ToISODate(window.Ceiling)))

	adjusted := window.Adjust(req.Payments)
	adjustments := diffDueDates(req.Payments, adjusted)
	for _, a := range adjustments {
		log.Info("Due date moved into banking window",
			logging.F(logging.FieldPaymentIndex, a.Index),
			logging.F(logging.FieldInvoiceNumber, a.InvoiceNumber),
			logging.F(logging.FieldDateDue, dateutils.ToISODate(a.From)),
			logging.F(logging.FieldAdjustedTo, dateutils.ToISODate(a.To)))
	}

	doc, err := pain.Build(req.Debtor, adjusted, req.Now, pain.Options{StripIDSeparators: g.opts.StripIDSeparators})
	if err != nil {
		return Result{}, err
	}

	rendered, err := g.serializer.Render(doc)
	if err != nil {
		return Result{}, fmt.Errorf("failed to render document: %w", err)
	}

	log.Info("Payment file generated",
		logging.F(logging.FieldMessageID, doc.Header.MessageID),
		logging.F(logging.FieldCount, doc.Header.NumberOfTransactions),
		logging.F(logging.FieldControlSum, doc.Header.ControlSum.StringFixed(2)))

	return Result{
		Document:    doc,
		Window:      window,
		Payments:    adjusted,
		Adjustments: adjustments,
		XML:         rendered,
		FileName:    doc.FileName(g.opts.FilePrefix),
	}, nil
}

// Window resolves the banking window of country for today.
func (g *Generator) Window(country string, today time.Time) (duedate.Window, error) {
	cal, err := g.Calendar(country)
	if err != nil {
		return duedate.Window{}, err
	}
	window, err := duedate.NewWindow(cal, today)
	if err != nil {
		return duedate.Window{}, duedate.WithCountry(err, holidays.NormalizeCountry(country))
	}
	return window, nil
}

// Calendar returns the banking-day calendar of country.
func (g *Generator) Calendar(country string) (bankday.Calendar, error) {
	set, err := g.holidays.ForCountry(country)
	if err != nil {
		return bankday.Calendar{}, err
	}
	return bankday.NewCalendar(set), nil
}

// Write stores the result in dir and returns the written path.
func (g *Generator) Write(res Result, dir string) (string, error) {
	path := filepath.Join(dir, res.FileName)
	if err := fileutils.WriteFile(path, res.XML); err != nil {
		return "", err
	}
	g.logger.Info("Payment file written",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldMessageID, res.Document.Header.MessageID))
	return path, nil
}

func diffDueDates(before, after []models.PaymentRecord) []Adjustment {
	var out []Adjustment
	for i := range before {
		from := dateutils.DateOf(before[i].DateDue)
		if dateutils.CompareDates(from, after[i].DateDue) != 0 {
			out = append(out, Adjustment{
				Index:         i,
				InvoiceNumber: before[i].InvoiceNumber,
				From:          from,
				To:            after[i].DateDue,
			})
		}
	}
	return out
}
