package input

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"fjacquet/pain-gen/internal/painerror"

	"github.com/gocarina/gocsv"
)

// csvPayment maps the header row; column order does not matter and extra
// columns are ignored.
type csvPayment struct {
	Issuer        string `csv:"issuer"`
	InvoiceNumber string `csv:"invoice_number"`
	Amount        string `csv:"amount"`
	DateDue       string `csv:"date_due"`
	AccountNumber string `csv:"account_number"`
	Currency      string `csv:"currency"`
}

func readCSV(path string) ([]rawPayment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening payments file: %w", err)
	}
	defer file.Close()

	br := bufio.NewReader(file)
	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(br)
	reader.TrimLeadingSpace = true

	var rows []csvPayment
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, &painerror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "CSV with header " + strings.Join(Columns, ","),
			Msg:            err.Error(),
		}
	}

	out := make([]rawPayment, len(rows))
	for i, r := range rows {
		out[i] = rawPayment{
			Row:           i + 2, // header is row 1
			Issuer:        r.Issuer,
			InvoiceNumber: r.InvoiceNumber,
			Amount:        r.Amount,
			DateDue:       r.DateDue,
			AccountNumber: r.AccountNumber,
			Currency:      r.Currency,
		}
	}
	return out, nil
}

// sniffDelimiter picks ';' for semicolon-separated exports (common where the
// decimal separator is a comma) and ',' otherwise. A UTF-8 BOM is consumed.
func sniffDelimiter(br *bufio.Reader) rune {
	if r, _, err := br.ReadRune(); err == nil && r != '\uFEFF' {
		_ = br.UnreadRune()
	}

	head, _ := br.Peek(br.Buffered())
	line := string(head)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}
