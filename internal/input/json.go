package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"fjacquet/pain-gen/internal/painerror"
)

// scalar accepts a JSON string or number and keeps its literal text, so
// amounts and numeric account numbers survive without float rounding.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected a string or a number, got %s", data)
		}
		*s = scalar(n.String())
		return nil
	}
}

// jsonPayment ignores unknown keys.
type jsonPayment struct {
	Issuer        string `json:"issuer"`
	InvoiceNumber scalar `json:"invoice_number"`
	Amount        scalar `json:"amount"`
	DateDue       string `json:"date_due"`
	AccountNumber scalar `json:"account_number"`
	Currency      string `json:"currency"`
}

func readJSON(path string) ([]rawPayment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading payments file: %w", err)
	}

	var entries []jsonPayment
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &painerror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "a JSON array of payment objects",
			Msg:            err.Error(),
		}
	}

	rows := make([]rawPayment, len(entries))
	for i, e := range entries {
		rows[i] = rawPayment{
			Row:           i + 1,
			Issuer:        e.Issuer,
			InvoiceNumber: string(e.InvoiceNumber),
			Amount:        string(e.Amount),
			DateDue:       e.DateDue,
			AccountNumber: string(e.AccountNumber),
			Currency:      e.Currency,
		}
	}
	return rows, nil
}
