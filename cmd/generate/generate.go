// Package generate implements the command that writes a pain.001 file.
package generate

import (
	"fmt"
	"io"
	"time"

	"fjacquet/pain-gen/cmd/root"
	"fjacquet/pain-gen/internal/container"
	"fjacquet/pain-gen/internal/dateutils"
	"fjacquet/pain-gen/internal/fileutils"
	"fjacquet/pain-gen/internal/generator"
	"fjacquet/pain-gen/internal/logging"
	"fjacquet/pain-gen/internal/validation"

	"github.com/spf13/cobra"
)

// Flags are the command's own options. Flags that mirror configuration keys
// are bound through root.BindFlag and read back from the config.
type Flags struct {
	Today  string
	DryRun bool
}

var flags Flags

// Cmd is the generate command
var Cmd = &cobra.Command{
	Use:   "generate <payments-file>",
	Short: "Generate a pain.001 file from a list of payments",
	Long: `Generate a pain.001.001.03 credit transfer file from a payments file.

The payments file is JSON (an array of objects), CSV or XLSX with the columns
issuer, invoice_number, amount, date_due, account_number and currency. The
debtor is read from a TOML file with a [Debtor] table.

Each due date is moved into the banking window of the debtor's country before
the file is written as {prefix}{MsgId}.xml in the output directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := root.GetContainer()
		path, err := Run(c, args[0], flags, time.Now(), cmd.OutOrStdout())
		if err != nil {
			c.GetLogger().WithError(err).Fatalf("Failed to generate payment file from %s", args[0])
			return
		}
		if path != "" {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	},
}

func init() {
	f := Cmd.Flags()
	f.StringP("debtor", "d", "", "Debtor TOML file (default debtor.toml)")
	f.StringP("output-dir", "o", "", "Directory the file is written to")
	f.String("prefix", "", "Output file name prefix")
	f.Bool("strip-id-separators", false, "Drop separators from the debtor organisation number")
	f.Bool("strict", false, "Check debtor country, IBAN and BIC")
	f.StringVar(&flags.Today, "today", "", "Run as if today were this date (YYYY-MM-DD)")
	f.BoolVar(&flags.DryRun, "dry-run", false, "Print the XML to stdout instead of writing a file")

	root.BindFlag("debtor.file", f.Lookup("debtor"))
	root.BindFlag("output.directory", f.Lookup("output-dir"))
	root.BindFlag("output.file_prefix", f.Lookup("prefix"))
	root.BindFlag("debtor.strip_id_separators", f.Lookup("strip-id-separators"))
	root.BindFlag("validation.strict", f.Lookup("strict"))
}

// Run generates the file for paymentsFile. It returns the written path, or
// "" for a dry run, where the XML goes to out.
func Run(c *container.Container, paymentsFile string, opts Flags, now time.Time, out io.Writer) (string, error) {
	cfg := c.GetConfig()
	log := c.GetLogger()

	if err := validation.IsValidPath(paymentsFile); err != nil {
		return "", err
	}

	now, err := resolveNow(opts.Today, now)
	if err != nil {
		return "", err
	}

	debtor, err := c.GetLoader().LoadDebtor(cfg.Debtor.File)
	if err != nil {
		return "", err
	}
	payments, err := c.GetLoader().LoadPayments(paymentsFile)
	if err != nil {
		return "", err
	}

	res, err := c.GetGenerator().Generate(generator.Request{
		Debtor:   debtor,
		Payments: payments,
		Now:      now,
	})
	if err != nil {
		return "", err
	}

	if opts.DryRun {
		log.Debug("Dry run, not writing file", logging.F(logging.FieldOutputFile, res.FileName))
		_, err := out.Write(res.XML)
		return "", err
	}

	if err := fileutils.EnsureDirectoryExists(cfg.Output.Directory); err != nil {
		return "", err
	}
	return c.GetGenerator().Write(res, cfg.Output.Directory)
}

// resolveNow keeps the clock and zone of now and replaces its date with today.
func resolveNow(today string, now time.Time) (time.Time, error) {
	if today == "" {
		return now, nil
	}
	d, _, err := dateutils.ParseDate(today)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today: %w", err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, now.Location()), nil
}
