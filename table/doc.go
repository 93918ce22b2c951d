// Package table provides the in-memory table representation shared by
// every stage of the merge pipeline.
//
// A Table is an ordered column list plus rows in insertion order. Rows are
// maps of column name to value; a missing key means null. Tables are built
// once by a loader or the extractor, handed to the join engine, and never
// mutated afterwards.
//
// Key Responsibilities:
//   - Holding named columns and rows with stable ordering
//   - Column projection for the final output layout
//   - Canonical key rendering (KeyString) so join keys of different dynamic
//     types (CSV text, JSON numbers, extracted ints) compare equal
//   - Deterministic CSV serialization of the final table
//
// Usage Example:
//
//	t := table.New("orders", "order_id", "total_amount")
//	t.Append(table.Row{"order_id": "1", "total_amount": "250.0"})
//
//	out, err := t.Project("order_id")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = out.WriteCSV(os.Stdout)
package table
