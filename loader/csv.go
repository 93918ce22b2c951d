package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"ordermerge/table"
)

// OrderDateColumn is the one column the tabular loader coerces: its text
// must match table.DateLayout (DD-MM-YYYY).
const OrderDateColumn = "order_date"

// CSV reads a delimited file with a header row into a table. The header
// defines the column set and order; data rows are kept in file order with
// no deduplication or filtering. Every cell is retained as its literal
// text, except the order-date column, which is parsed into a calendar
// date. A date that does not match the expected pattern is a fatal
// malformed-record error.
func CSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open orders file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := records[0]
	t := table.New("orders", header...)

	for i, record := range records[1:] {
		row := make(table.Row, len(header))
		for j, col := range header {
			if col == OrderDateColumn {
				d, err := time.Parse(table.DateLayout, record[j])
				if err != nil {
					return nil, fmt.Errorf("%s row %d: order_date '%s' does not match DD-MM-YYYY", path, i+1, record[j])
				}
				row[col] = d
			} else {
				row[col] = record[j]
			}
		}
		t.Append(row)
	}

	return t, nil
}
