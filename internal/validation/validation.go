// Package validation checks debtor account data and command inputs.
package validation

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"fjacquet/pain-gen/internal/models"
	"fjacquet/pain-gen/internal/painerror"
)

var (
	bicPattern     = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	countryPattern = regexp.MustCompile(`^[A-Z]{2}$`)
	ibanPattern    = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)
)

// IsValidPath checks that path exists and is a regular file or a directory.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}
	return nil
}

// CompactIBAN removes spaces and upper-cases an IBAN.
func CompactIBAN(iban string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(iban), " ", ""))
}

// IsValidIBAN checks the IBAN shape and its ISO 7064 mod-97 checksum.
func IsValidIBAN(iban string) bool {
	iban = CompactIBAN(iban)
	if !ibanPattern.MatchString(iban) {
		return false
	}

	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for _, r := range rearranged {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
			remainder = (remainder*10 + v) % 97
		case r >= 'A' && r <= 'Z':
			v = int(r-'A') + 10
			remainder = (remainder*100 + v) % 97
		default:
			return false
		}
	}
	return remainder == 1
}

// IsValidBIC checks an 8 or 11 character BIC.
func IsValidBIC(bic string) bool {
	return bicPattern.MatchString(strings.TrimSpace(bic))
}

// IsValidCountryCode checks an upper-case ISO 3166 alpha-2 shape.
func IsValidCountryCode(country string) bool {
	return countryPattern.MatchString(country)
}

// ValidateDebtor checks that every debtor field is present and, when strict,
// that IBAN, BIC and country are well formed and agree with each other.
func ValidateDebtor(d models.DebtorProfile, strict bool) error {
	required := []struct {
		field string
		value string
	}{
		{"name", d.Name},
		{"id_nbr", d.IDNumber},
		{"bic", d.BIC},
		{"iban", d.IBAN},
		{"country", d.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return debtorError(r.field, r.value)
		}
	}

	if !strict {
		return nil
	}

	if !IsValidCountryCode(d.Country) {
		return debtorError("country", d.Country)
	}
	if !IsValidIBAN(d.IBAN) {
		return debtorError("iban", d.IBAN)
	}
	if !IsValidBIC(d.BIC) {
		return debtorError("bic", d.BIC)
	}
	if bicCountry := strings.TrimSpace(d.BIC)[4:6]; bicCountry != CompactIBAN(d.IBAN)[:2] {
		return debtorError("bic", d.BIC+" (IBAN country "+CompactIBAN(d.IBAN)[:2]+")")
	}
	return nil
}

func debtorError(field, value string) error {
	return &painerror.ValidationError{
		Kind:  painerror.ErrInvalidDebtor,
		Index: -1,
		Field: "debtor." + field,
		Value: value,
	}
}
