// Package inspect implements the command that reads pain.001 files back and
// checks their header totals.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/pain-gen/cmd/root"
	"fjacquet/pain-gen/internal/fileutils"
	"fjacquet/pain-gen/internal/logging"
	"fjacquet/pain-gen/internal/validation"
	"fjacquet/pain-gen/internal/xmlutils"

	"github.com/spf13/cobra"
)

// ErrInconsistent is returned when at least one file fails its checks.
var ErrInconsistent = errors.New("inconsistent pain.001 file")

// Cmd is the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect <file-or-directory>...",
	Short: "Print and verify the totals of pain.001 files",
	Long: `Read pain.001 files and print their group header and payments.

NbOfTxs and CtrlSum are checked against the payments in the file and every
PmtInfId must be unique. Directories are searched for .xml files.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := root.GetContainer()
		if err := Run(args, cmd.OutOrStdout(), c.GetLogger()); err != nil {
			c.GetLogger().WithError(err).Fatalf("Inspection failed")
		}
	},
}

// Run inspects every file named by args, expanding directories.
func Run(args []string, out io.Writer, logger logging.Logger) error {
	files, err := collect(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .xml files found in %s", strings.Join(args, ", "))
	}

	failed := 0
	for _, file := range files {
		problems, err := inspectFile(file, out)
		if err != nil {
			return err
		}
		if len(problems) > 0 {
			failed++
			logger.Warn("Inconsistent payment file",
				logging.F(logging.FieldFile, file),
				logging.F(logging.FieldCount, len(problems)))
		}
	}

	logger.Info("Inspected payment files",
		logging.F(logging.FieldCount, len(files)),
		logging.F("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrInconsistent, failed, len(files))
	}
	return nil
}

func collect(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if err := validation.IsValidPath(arg); err != nil {
			return nil, err
		}
		switch {
		case fileutils.DirectoryExists(arg):
			found, err := fileutils.ListFilesWithExtension(arg, ".xml")
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		default:
			files = append(files, arg)
		}
	}
	return files, nil
}

func inspectFile(path string, out io.Writer) ([]string, error) {
	doc, err := xmlutils.LoadXMLFile(path)
	if err != nil {
		return nil, err
	}
	summary, err := xmlutils.ReadPain001(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	problems := summary.Mismatches()

	var b strings.Builder
	fmt.Fprintf(&b, "File:          %s\n", path)
	fmt.Fprintf(&b, "MsgId:         %s\n", summary.MessageID)
	fmt.Fprintf(&b, "Created:       %s\n", summary.CreationDateTime)
	fmt.Fprintf(&b, "Initiator:     %s\n", summary.InitiatingPartyID)
	fmt.Fprintf(&b, "Transactions:  %d\n", summary.NumberOfTransactions)
	fmt.Fprintf(&b, "Control sum:   %s\n", summary.ControlSum.StringFixed(2))
	for _, p := range summary.Payments {
		fmt.Fprintf(&b, "  %-12s %s %12s %s  %s\n",
			p.ID, p.ExecutionDate, p.Amount.StringFixed(2), p.Currency, p.CreditorName)
	}
	if len(problems) == 0 {
		b.WriteString("Status:        OK\n\n")
	} else {
		for _, p := range problems {
			fmt.Fprintf(&b, "Status:        MISMATCH %s\n", p)
		}
		b.WriteString("\n")
	}

	_, err = io.WriteString(out, b.String())
	return problems, err
}
