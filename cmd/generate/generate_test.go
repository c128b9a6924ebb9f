package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/pain-gen/internal/config"
	"fjacquet/pain-gen/internal/container"
	"fjacquet/pain-gen/internal/logging"
	"fjacquet/pain-gen/internal/xmlutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const debtorTOML = `[Debtor]
name = "Debtor AB"
id_nbr = "556677-8899"
bic = "NDEASESS"
iban = "SE4550000000058398257466"
country = "SE"
`

const paymentsJSON = `[
  {"issuer": "Acme AB", "invoice_number": 1001, "amount": "100.10", "date_due": "2024-01-05",
   "account_number": "5555-1234", "currency": "SEK"},
  {"issuer": "Widget AB", "invoice_number": 1002, "amount": "250", "date_due": "2024-01-20",
   "account_number": "123-4567", "currency": "SEK"}
]`

func setup(t *testing.T) (*container.Container, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "debtor.toml"), []byte(debtorTOML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "payments.json"), []byte(paymentsJSON), 0o600))

	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = logging.FormatText
	cfg.Debtor.File = filepath.Join(dir, "debtor.toml")
	cfg.Holidays.File = filepath.Join(dir, "holidays.yaml")
	cfg.Holidays.National = true
	cfg.Output.Directory = filepath.Join(dir, "out")
	cfg.Output.FilePrefix = "pain001_"
	cfg.Output.Indent = 2

	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c, dir
}

func TestRun_WritesFile(t *testing.T) {
	c, dir := setup(t)
	now := time.Date(2024, time.January, 10, 9, 30, 0, 0, time.UTC)

	var out bytes.Buffer
	path, err := Run(c, filepath.Join(dir, "payments.json"), Flags{}, now, &out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "pain001_1704879000.xml"), path)
	assert.Empty(t, out.String())

	root, err := xmlutils.LoadXMLFile(path)
	require.NoError(t, err)
	summary, err := xmlutils.ReadPain001(root)
	require.NoError(t, err)

	assert.Equal(t, "1704879000", summary.MessageID)
	assert.Equal(t, 2, summary.NumberOfTransactions)
	assert.Equal(t, "350.1", summary.ControlSum.String())
	assert.Empty(t, summary.Mismatches())
	require.Len(t, summary.Payments, 2)
	assert.Equal(t, "2024-01-11", summary.Payments[0].ExecutionDate)
	assert.Equal(t, "2024-01-20", summary.Payments[1].ExecutionDate)
}

func TestRun_DryRunWithToday(t *testing.T) {
	c, dir := setup(t)
	now := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

	var out bytes.Buffer
	path, err := Run(c, filepath.Join(dir, "payments.json"), Flags{Today: "2024-01-10", DryRun: true}, now, &out)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Contains(t, out.String(), "<MsgId>1704879000</MsgId>")
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestRun_Errors(t *testing.T) {
	c, dir := setup(t)
	now := time.Date(2024, time.January, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		file  string
		flags Flags
	}{
		{"missing payments file", filepath.Join(dir, "nope.json"), Flags{}},
		{"bad today", filepath.Join(dir, "payments.json"), Flags{Today: "someday"}},
		{"unsupported extension", filepath.Join(dir, "debtor.toml"), Flags{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(c, tt.file, tt.flags, now, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

func TestResolveNow(t *testing.T) {
	now := time.Date(2024, time.March, 1, 14, 5, 9, 123, time.UTC)

	got, err := resolveNow("", now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = resolveNow("2024-01-10", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 10, 14, 5, 9, 0, time.UTC), got)
}

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "generate <payments-file>", Cmd.Use)
	for _, name := range []string{"debtor", "output-dir", "prefix", "strip-id-separators", "strict", "today", "dry-run"} {
		assert.NotNil(t, Cmd.Flags().Lookup(name), name)
	}
}
