package input

import (
	"errors"
	"testing"

	"fjacquet/pain-gen/internal/logging"
	"fjacquet/pain-gen/internal/painerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDebtor(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		id      string
	}{
		{
			name: "toml with quoted id",
			file: "debtor.toml",
			content: `[Debtor]
name = "Debtor AB"
id_nbr = "556677-8899"
bic = "NDEASESS"
iban = "SE4550000000058398257466"
country = "SE"
`,
			id: "556677-8899",
		},
		{
			name: "toml with numeric id",
			file: "debtor.toml",
			content: `[Debtor]
name = "Debtor AB"
id_nbr = 5566778899
bic = "NDEASESS"
iban = "SE4550000000058398257466"
country = "SE"
`,
			id: "5566778899",
		},
		{
			name: "yaml lower-case table",
			file: "debtor.yaml",
			content: `debtor:
  name: Debtor AB
  id_nbr: "556677-8899"
  bic: NDEASESS
  iban: SE4550000000058398257466
  country: SE
`,
			id: "556677-8899",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			d, err := NewLoader(logging.NewMockLogger()).LoadDebtor(path)
			require.NoError(t, err)

			assert.Equal(t, "Debtor AB", d.Name)
			assert.Equal(t, tt.id, d.IDNumber)
			assert.Equal(t, "NDEASESS", d.BIC)
			assert.Equal(t, "SE4550000000058398257466", d.IBAN)
			assert.Equal(t, "SE", d.Country)
		})
	}
}

func TestLoadDebtor_Errors(t *testing.T) {
	t.Run("missing table", func(t *testing.T) {
		path := writeFile(t, "debtor.toml", "[Creditor]\nname = \"X\"\n")
		_, err := NewLoader(logging.NewMockLogger()).LoadDebtor(path)
		var ferr *painerror.InvalidFormatError
		assert.True(t, errors.As(err, &ferr))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(logging.NewMockLogger()).LoadDebtor("/nonexistent/debtor.toml")
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeFile(t, "debtor.toml", "[Debtor\nname = ")
		_, err := NewLoader(logging.NewMockLogger()).LoadDebtor(path)
		assert.Error(t, err)
	})
}
