package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a query value to a Format. Empty means CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", raw)
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename builds the attachment name for a table export.
func (f Format) Filename(name string) string {
	return name + "." + string(f)
}

// Table is a rectangular export with a header row.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Append adds a row, neutralizing cells a spreadsheet would read as a formula.
func (t *Table) Append(row ...string) {
	cells := make([]string, len(row))
	for i, v := range row {
		cells[i] = escapeFormula(v)
	}
	t.Rows = append(t.Rows, cells)
}

// escapeFormula prefixes a quote to text starting with a formula trigger.
// Plain numbers such as "-12.5" are left alone.
func escapeFormula(v string) string {
	if v == "" || !strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return v
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return v
	}
	return "'" + v
}

func Render(format Format, table Table) ([]byte, error) {
	switch format {
	case FormatCSV:
		return renderCSV(table)
	case FormatXLSX:
		return renderXLSX(table)
	default:
		return nil, errors.Newf("unsupported export format %q", format)
	}
}

func renderCSV(table Table) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := csv.NewWriter(buf)
	if err := w.Write(table.Header); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, errors.Wrap(err, "write csv rows")
	}

	// buf goes back to the pool, so hand out a copy.
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func renderXLSX(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(table.Name)
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return nil, errors.Wrapf(err, "rename sheet to %q", sheet)
	}

	if err := setRow(f, sheet, 1, table.Header); err != nil {
		return nil, err
	}
	for idx, row := range table.Rows {
		if err := setRow(f, sheet, idx+2, row); err != nil {
			return nil, err
		}
	}

	var out bytes.Buffer
	if err := f.Write(&out); err != nil {
		return nil, errors.Wrap(err, "write xlsx workbook")
	}
	return out.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, rowNumber int, values []string) error {
	axis, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return errors.Wrapf(err, "resolve row %d", rowNumber)
	}

	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
		return errors.Wrapf(err, "set row %d", rowNumber)
	}
	return nil
}

// Excel caps sheet names at 31 characters.
func sheetName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "export"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
