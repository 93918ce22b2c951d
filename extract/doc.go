// Package extract pulls typed restaurant tuples out of free-form text.
//
// The source artifact is SQL-looking text; the extractor is not a SQL
// parser. It matches one exact statement shape,
//
//	INSERT INTO restaurants VALUES (<int>, '<text>', '<text>', <float>);
//
// and produces one four-column row per match (restaurant_id INT,
// restaurant_name TEXT, cuisine TEXT, rating FLOAT), in source order.
//
// Anything else - statements for other tables, escaped quotes inside the
// string literals, multi-row VALUES syntax, statements spanning multiple
// lines - is silently skipped. Keeping the match this narrow is
// deliberate: it preserves identical extraction behavior on the same
// fixture data instead of silently upgrading to a grammar.
package extract
