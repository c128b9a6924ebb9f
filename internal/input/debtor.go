package input

import (
	"fmt"
	"strings"

	"fjacquet/pain-gen/internal/fileutils"
	"fjacquet/pain-gen/internal/logging"
	"fjacquet/pain-gen/internal/models"
	"fjacquet/pain-gen/internal/painerror"

	"github.com/spf13/viper"
)

// DebtorKey is the table holding the debtor profile. Keys are matched
// case-insensitively, so both [Debtor] and [debtor] work.
const DebtorKey = "debtor"

// LoadDebtor reads the debtor profile from a TOML, YAML or JSON file.
// Numeric values such as an unquoted id_nbr are accepted as text.
func (l *Loader) LoadDebtor(path string) (models.DebtorProfile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(fileutils.Extension(path), "."); ext == "" {
		v.SetConfigType("toml")
	}

	if err := v.ReadInConfig(); err != nil {
		return models.DebtorProfile{}, fmt.Errorf("error reading debtor file: %w", err)
	}
	if !v.IsSet(DebtorKey) {
		return models.DebtorProfile{}, &painerror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "a [Debtor] table with name, id_nbr, bic, iban and country",
			Msg:            "no debtor table found",
		}
	}

	var d models.DebtorProfile
	if err := v.UnmarshalKey(DebtorKey, &d); err != nil {
		return models.DebtorProfile{}, &painerror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "a [Debtor] table with name, id_nbr, bic, iban and country",
			Msg:            err.Error(),
		}
	}

	d.Name = strings.TrimSpace(d.Name)
	d.IDNumber = strings.TrimSpace(d.IDNumber)
	d.BIC = strings.TrimSpace(d.BIC)
	d.IBAN = strings.TrimSpace(d.IBAN)
	d.Country = strings.TrimSpace(d.Country)

	l.logger.Debug("Loaded debtor profile",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCountry, d.Country))
	return d, nil
}
