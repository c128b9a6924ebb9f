package input

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/pain-gen/internal/dateutils"
	"fjacquet/pain-gen/internal/painerror"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet. Row 1 is the header; cells are read raw so
// that dates arrive as Excel serial numbers rather than locale-formatted text.
func readXLSX(path string) ([]rawPayment, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening payments workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &painerror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "a header row with " + strings.Join(Columns, ", "),
			Msg:            fmt.Sprintf("sheet %q is empty", sheet),
		}
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, &painerror.InvalidFormatError{
				FilePath:       path,
				ExpectedFormat: "a header row with " + strings.Join(Columns, ", "),
				Msg:            fmt.Sprintf("missing column %q", col),
			}
		}
	}

	var out []rawPayment
	for i, row := range rows[1:] {
		cell := func(col string) string {
			j := index[col]
			if j < len(row) {
				return strings.TrimSpace(row[j])
			}
			return ""
		}
		if isBlank(row) {
			continue
		}
		out = append(out, rawPayment{
			Row:           i + 2,
			Issuer:        cell(ColumnIssuer),
			InvoiceNumber: cell(ColumnInvoiceNumber),
			Amount:        cell(ColumnAmount),
			DateDue:       excelDate(cell(ColumnDateDue)),
			AccountNumber: cell(ColumnAccountNumber),
			Currency:      cell(ColumnCurrency),
		})
	}
	return out, nil
}

// excelDate converts a serial day number to an ISO date; text is returned
// unchanged for the common date parser.
func excelDate(raw string) string {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || serial < 1 {
		return raw
	}
	if len(raw) == len(dateutils.DateLayoutCompact) && !strings.Contains(raw, ".") {
		// 20240115 is a compact date, not a serial in the year 56000.
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return dateutils.ToISODate(t)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
