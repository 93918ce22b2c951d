package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"ordermerge/table"
)

// JSON reads a file containing a single array of flat key-value records
// into a table: one row per record, one column per distinct key in
// first-seen order. Records may have heterogeneous key sets; a key absent
// from a record is null for that row. A record containing a nested object
// or array is a fatal malformed-record error for this dataset.
//
// Parsing walks the token stream rather than unmarshalling into maps so
// that column order follows the document instead of Go's map iteration.
func JSON(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open users file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("%s: expected a single top-level array", path)
	}

	t := table.New("users")

	for i := 0; dec.More(); i++ {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse %s record %d: %w", path, i, err)
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, fmt.Errorf("%s record %d: expected a flat object", path, i)
		}

		row := make(table.Row)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("parse %s record %d: %w", path, i, err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("%s record %d: expected an object key", path, i)
			}

			valTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("parse %s record %d: %w", path, i, err)
			}
			if _, nested := valTok.(json.Delim); nested {
				return nil, fmt.Errorf("%s record %d: key '%s' holds a nested value, records must be flat", path, i, key)
			}

			// JSON numbers become float64
			row[key] = valTok
			t.AddColumn(key)
		}

		// consume the closing '}'
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("parse %s record %d: %w", path, i, err)
		}

		t.Append(row)
	}

	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return t, nil
}
