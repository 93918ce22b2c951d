// Package join combines tables and computes derived columns.
//
// Left performs a left outer join: every left row survives, unmatched
// keys yield nulls for right-origin columns, and duplicate right-side
// keys fan out to one output row per matching pair (relational
// semantics - the engine never picks an arbitrary match). The build side
// is indexed by canonical key text, so differently-typed key values that
// denote the same key still match.
//
// Column name collisions between the two sides are resolved by
// origin-side suffixes. The merge pipeline relies on this to keep both an
// order's denormalized restaurant name snapshot and the restaurant's
// current master name as two distinct columns; collapsing them would lose
// the signal that they can diverge.
//
// DeriveCalendar adds month, year and quarter columns computed from a
// parsed date column.
//
// Usage Example:
//
//	enriched, err := join.Left(orders, users, "user_id", join.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = join.DeriveCalendar(enriched, "order_date")
package join
