package table

import (
	"encoding/csv"
	"io"
)

// WriteCSV serializes the table as delimited text: one header row listing
// Columns in order, then one record per row in insertion order. Absent
// values are written as empty fields. Output is deterministic: identical
// tables serialize to identical bytes.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = FormatValue(row[col])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
