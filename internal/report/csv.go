package report

import (
	"encoding/csv"
	"io"
)

// CSVExporter writes each table as a header plus rows with unformatted
// numbers. Tables are separated by a blank line.
type CSVExporter struct{}

func (CSVExporter) Format() string { return "csv" }

func (CSVExporter) Export(w io.Writer, tables []Table) error {
	cw := csv.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			if err := cw.Write(nil); err != nil {
				return err
			}
		}
		headers := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			headers[j] = c.Header
		}
		if err := cw.Write(headers); err != nil {
			return err
		}
		for _, row := range t.Rows {
			cells := make([]string, len(t.Columns))
			for j, c := range t.Columns {
				cells[j] = Plain(c.Kind, row[j])
			}
			if err := cw.Write(cells); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
