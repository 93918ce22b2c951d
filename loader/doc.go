// Package loader reads the two structured source artifacts into tables.
//
// The tabular loader (CSV) reads a delimited file with a header row; the
// header defines the column set, rows keep file order, and the one
// coercion rule is that order_date must parse as DD-MM-YYYY. The
// hierarchical loader (JSON) reads a single array of flat key-value
// records, one column per distinct key in first-seen order.
//
// Both loaders are all-or-nothing: a malformed record (a date that does
// not match the pattern, a nested JSON value) fails the whole load rather
// than producing a partial table.
//
// Usage Example:
//
//	orders, err := loader.CSV("orders.csv")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	users, err := loader.JSON("users.json")
package loader
