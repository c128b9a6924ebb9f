package pain

import (
	"strconv"

	"fjacquet/pain-gen/internal/currencyutils"
	"fjacquet/pain-gen/internal/models"
	"fjacquet/pain-gen/internal/painerror"
)

// Validate checks every payment and returns the first problem found.
func Validate(payments []models.PaymentRecord) error {
	if len(payments) == 0 {
		return &painerror.ValidationError{
			Kind:  painerror.ErrEmptyPaymentSet,
			Index: -1,
			Field: "payments",
			Value: "0",
		}
	}

	seen := make(map[int64]int, len(payments))
	for i, p := range payments {
		if err := validatePayment(i, p); err != nil {
			return err
		}
		if first, dup := seen[p.InvoiceNumber]; dup {
			return &painerror.ValidationError{
				Kind:  painerror.ErrDuplicatePaymentID,
				Index: i,
				Field: "invoice_number",
				Value: p.InvoiceRef() + " (also payment " + strconv.Itoa(first) + ")",
			}
		}
		seen[p.InvoiceNumber] = i
	}
	return nil
}

func validatePayment(i int, p models.PaymentRecord) error {
	if !currencyutils.IsPositive(p.Amount) || !currencyutils.HasMinorUnitPrecision(p.Amount) {
		return &painerror.ValidationError{
			Kind:  painerror.ErrInvalidAmount,
			Index: i,
			Field: "amount",
			Value: p.Amount.String(),
		}
	}
	if !currencyutils.IsCurrencyCode(p.Currency) {
		return &painerror.ValidationError{
			Kind:  painerror.ErrInvalidCurrency,
			Index: i,
			Field: "currency",
			Value: p.Currency,
		}
	}
	if p.InvoiceNumber <= 0 {
		return &painerror.ValidationError{
			Kind:  painerror.ErrInvalidInvoiceNumber,
			Index: i,
			Field: "invoice_number",
			Value: p.InvoiceRef(),
		}
	}
	return nil
}
