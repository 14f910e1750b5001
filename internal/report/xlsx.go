package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// XLSXExporter writes one worksheet per table, with numeric cells for
// amounts, percentages and counts.
type XLSXExporter struct{}

func (XLSXExporter) Format() string { return "xlsx" }

func (XLSXExporter) Export(w io.Writer, tables []Table) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	used := make(map[string]bool)
	for i, t := range tables {
		sheet := sheetName(t.Name, used)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("naming sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet %s: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, t, bold); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}

	return f.Write(w)
}

func writeSheet(f *excelize.File, sheet string, t Table, headerStyle int) error {
	for col, c := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, c.Header); err != nil {
			return err
		}
	}
	if len(t.Columns) > 0 {
		last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for col, c := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, sheetValue(c.Kind, row[col])); err != nil {
				return err
			}
		}
	}
	return nil
}

func sheetValue(kind Kind, v any) any {
	switch kind {
	case KindAmount:
		return asDecimal(v).InexactFloat64()
	case KindPercent:
		return asDecimal(v).Round(2).InexactFloat64()
	case KindCount:
		return asInt(v)
	default:
		return asString(v)
	}
}

// sheetName truncates name to Excel's limit and makes it unique.
func sheetName(name string, used map[string]bool) string {
	if name == "" {
		name = "Sheet"
	}
	base := name
	if len(base) > maxSheetName {
		base = base[:maxSheetName]
	}
	candidate := base
	for n := 2; used[candidate]; n++ {
		suffix := fmt.Sprintf("-%d", n)
		trimmed := base
		if len(trimmed)+len(suffix) > maxSheetName {
			trimmed = trimmed[:maxSheetName-len(suffix)]
		}
		candidate = trimmed + suffix
	}
	used[candidate] = true
	return candidate
}
