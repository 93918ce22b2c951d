package join

import (
	"fmt"
	"time"

	"ordermerge/table"
)

// Derived calendar column names.
const (
	MonthColumn   = "order_month"
	YearColumn    = "order_year"
	QuarterColumn = "order_quarter"
)

// DeriveCalendar appends three calendar columns computed from the named
// date column: month (1-12), four-digit year, and quarter (months 1-3 are
// Q1, 4-6 Q2, 7-9 Q3, 10-12 Q4). Each derived value is a pure function of
// the row's own date; there is no cross-row dependency.
//
// Every row must hold a parsed date in the date column; anything else is
// a malformed-record error.
func DeriveCalendar(t *table.Table, dateColumn string) error {
	if !t.HasColumn(dateColumn) {
		return fmt.Errorf("table '%s' has no column '%s'", t.Name, dateColumn)
	}

	for i, row := range t.Rows {
		d, ok := row[dateColumn].(time.Time)
		if !ok {
			return fmt.Errorf("row %d: column '%s' does not hold a date", i, dateColumn)
		}

		month := int(d.Month())
		row[MonthColumn] = month
		row[YearColumn] = d.Year()
		row[QuarterColumn] = (month-1)/3 + 1
	}

	t.AddColumn(MonthColumn)
	t.AddColumn(YearColumn)
	t.AddColumn(QuarterColumn)
	return nil
}
