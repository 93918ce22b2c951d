// Package pipeline sequences the merge from source files to the enriched
// orders artifact.
//
// Four stages run strictly in order, each feeding the next:
//
//  1. Tabular loader - orders CSV into a table, dates coerced
//  2. Hierarchical loader - users JSON array into a table
//  3. Embedded-literal extractor - restaurant tuples out of SQL text
//  4. Join & derive - two left joins, calendar columns, CSV output
//
// Data flows one way and every stage's output is immutable; there is no
// shared mutable state, no concurrency, and no retry. A stage failure
// aborts the run before any output is written. Two runs over identical
// inputs produce byte-identical output.
package pipeline
