package extract

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"ordermerge/table"
)

// insertPattern matches exactly one statement shape, anchored to the
// restaurants table:
//
//	INSERT INTO restaurants VALUES (7, 'Pasta Place', 'Italian', 4.5);
//
// This is textual pattern matching, not a SQL grammar. Statements for
// other tables, multi-row VALUES lists, statements spanning lines, and
// string literals containing quotes do not match and are skipped. That is
// a documented limitation, not a parsing guarantee.
// Whitespace inside the tuple is same-line only ([ \t], never \s), so a
// statement split across lines stays unmatched.
var insertPattern = regexp.MustCompile(
	`INSERT INTO restaurants VALUES[ \t]*\([ \t]*(\d+)[ \t]*,[ \t]*'([^'\n]*)'[ \t]*,[ \t]*'([^'\n]*)'[ \t]*,[ \t]*(\d+(?:\.\d+)?)[ \t]*\);`,
)

// Restaurants scans free-form text and extracts one row per matching
// INSERT statement, in the order statements appear. Non-matching
// statements are silently skipped; extraction never fails.
func Restaurants(text string) *table.Table {
	t := table.New("restaurants", "restaurant_id", "restaurant_name", "cuisine", "rating")

	for _, m := range insertPattern.FindAllStringSubmatch(text, -1) {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		rating, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			continue
		}
		t.Append(table.Row{
			"restaurant_id":   id,
			"restaurant_name": m[2],
			"cuisine":         m[3],
			"rating":          rating,
		})
	}

	return t
}

// File reads a text file and extracts restaurant rows from it.
func File(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open restaurants file: %w", err)
	}
	return Restaurants(string(data)), nil
}
