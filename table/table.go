package table

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// DateLayout is the textual form used for calendar dates in source and
// output files: day-month-year, zero-padded (e.g. "15-03-2024").
const DateLayout = "02-01-2006"

// Row represents a single table row (map of column name to value).
// A missing key means the value is null for that row.
type Row map[string]interface{}

// Table is an in-memory table: an ordered column list plus rows in
// insertion order. Columns carries the order, since Row is a map.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(name string, columns ...string) *Table {
	return &Table{
		Name:    name,
		Columns: append([]string{}, columns...),
	}
}

// AddColumn appends a column if the table does not already have it.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds a row, preserving insertion order.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Project returns a new table containing only the named columns, in the
// given order. Every requested column must exist.
func (t *Table) Project(columns ...string) (*Table, error) {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return nil, fmt.Errorf("table '%s' has no column '%s'", t.Name, c)
		}
	}

	out := New(t.Name, columns...)
	for _, row := range t.Rows {
		projected := make(Row, len(columns))
		for _, c := range columns {
			if v, ok := row[c]; ok {
				projected[c] = v
			}
		}
		out.Append(projected)
	}
	return out, nil
}

// KeyString renders a value to one canonical text form so that values of
// different dynamic types compare equal when they denote the same key:
// a CSV-sourced "10", a JSON-sourced float64(10) and an int(10) all
// render as "10".
func KeyString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// FormatValue renders a cell for the delimited output artifact.
// Null (nil or absent) becomes the empty field; dates use DateLayout;
// everything else keeps its literal form.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(DateLayout)
	default:
		return fmt.Sprintf("%v", val)
	}
}
