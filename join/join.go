package join

import (
	"fmt"

	"ordermerge/table"
)

// Options controls how colliding column names are disambiguated for one
// join. When the right table declares a non-key column whose name the
// left table already uses, the left column is renamed with LeftSuffix and
// the right one with RightSuffix.
type Options struct {
	LeftSuffix  string
	RightSuffix string
}

func (o Options) withDefaults() Options {
	if o.LeftSuffix == "" {
		o.LeftSuffix = "_left"
	}
	if o.RightSuffix == "" {
		o.RightSuffix = "_right"
	}
	return o
}

// Left performs a left outer join of left with right on the named key.
//
// Every left row appears in the output: rows with no match keep null for
// all right-origin columns, and rows with several matches fan out to one
// output row per matching pair, matches in right-table order. Left row
// order is preserved, so the join is stable and deterministic.
//
// Key values are matched through table.KeyString, so keys loaded as text,
// JSON numbers or extracted ints compare by their canonical rendering.
// The right table's key column is not duplicated into the output.
func Left(left, right *table.Table, key string, opts Options) (*table.Table, error) {
	if !left.HasColumn(key) {
		return nil, fmt.Errorf("left table '%s' has no join column '%s'", left.Name, key)
	}
	if !right.HasColumn(key) {
		return nil, fmt.Errorf("right table '%s' has no join column '%s'", right.Name, key)
	}
	opts = opts.withDefaults()

	// Build side: right row indexes grouped by canonical key text.
	// A slice per key keeps relational fan-out on duplicate keys.
	matches := make(map[string][]int, len(right.Rows))
	for i, row := range right.Rows {
		if v, ok := row[key]; ok && v != nil {
			k := table.KeyString(v)
			matches[k] = append(matches[k], i)
		}
	}

	// Colliding non-key names are renamed by origin side.
	collides := make(map[string]bool)
	for _, c := range right.Columns {
		if c != key && left.HasColumn(c) {
			collides[c] = true
		}
	}

	leftOut := make(map[string]string, len(left.Columns))
	var columns []string
	for _, c := range left.Columns {
		name := c
		if collides[c] {
			name = c + opts.LeftSuffix
		}
		leftOut[c] = name
		columns = append(columns, name)
	}
	rightOut := make(map[string]string, len(right.Columns))
	for _, c := range right.Columns {
		if c == key {
			continue
		}
		name := c
		if collides[c] {
			name = c + opts.RightSuffix
		}
		rightOut[c] = name
		columns = append(columns, name)
	}

	out := table.New(left.Name, columns...)

	for _, leftRow := range left.Rows {
		var rightIdx []int
		if v, ok := leftRow[key]; ok && v != nil {
			rightIdx = matches[table.KeyString(v)]
		}

		if len(rightIdx) == 0 {
			// Unmatched key: not an error, right-origin columns stay null.
			out.Append(remap(leftRow, leftOut))
			continue
		}

		for _, ri := range rightIdx {
			merged := remap(leftRow, leftOut)
			for c, name := range rightOut {
				if v, ok := right.Rows[ri][c]; ok {
					merged[name] = v
				}
			}
			out.Append(merged)
		}
	}

	return out, nil
}

// remap copies a row, renaming columns through the given name map.
func remap(row table.Row, names map[string]string) table.Row {
	out := make(table.Row, len(row))
	for c, v := range row {
		if name, ok := names[c]; ok {
			out[name] = v
		} else {
			out[c] = v
		}
	}
	return out
}
