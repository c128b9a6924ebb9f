package models

import (
	"strings"
	"unicode"
)

// DebtorProfile is the paying organisation. One profile is shared by every
// payment of a generated document.
type DebtorProfile struct {
	Name string `mapstructure:"name" yaml:"name"`
	// IDNumber is the national organisation number, possibly with separators ("556677-8899").
	IDNumber string `mapstructure:"id_nbr" yaml:"id_nbr"`
	BIC      string `mapstructure:"bic" yaml:"bic"`
	IBAN     string `mapstructure:"iban" yaml:"iban"`
	// Country is the ISO 3166 alpha-2 code of residence; it selects the holiday calendar.
	Country string `mapstructure:"country" yaml:"country"`
}

// OrganisationID returns the identifier used in Id/OrgId/Othr/Id.
// With stripSeparators set, everything but letters and digits is dropped.
func (d DebtorProfile) OrganisationID(stripSeparators bool) string {
	if !stripSeparators {
		return d.IDNumber
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, d.IDNumber)
}
