package table

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	tbl := New("orders", "a", "b", "c")
	tbl.Append(Row{"a": "1", "b": "2", "c": "3"})
	tbl.Append(Row{"a": "4", "c": "6"})

	t.Run("reorders and subsets columns", func(t *testing.T) {
		out, err := tbl.Project("c", "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a"}, out.Columns)
		require.Equal(t, 2, out.NumRows())
		assert.Equal(t, "3", out.Rows[0]["c"])
		assert.Equal(t, "1", out.Rows[0]["a"])
	})

	t.Run("keeps absent values absent", func(t *testing.T) {
		out, err := tbl.Project("b")
		require.NoError(t, err)
		_, ok := out.Rows[1]["b"]
		assert.False(t, ok)
	})

	t.Run("unknown column is an error", func(t *testing.T) {
		_, err := tbl.Project("a", "nope")
		assert.Error(t, err)
	})
}

func TestAddColumn(t *testing.T) {
	tbl := New("users")
	tbl.AddColumn("user_id")
	tbl.AddColumn("name")
	tbl.AddColumn("user_id")

	assert.Equal(t, []string{"user_id", "name"}, tbl.Columns)
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string passes through", "10", "10"},
		{"int renders base 10", 10, "10"},
		{"integral float drops the point", float64(10), "10"},
		{"fractional float keeps digits", 4.5, "4.5"},
		{"nil is empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyString(tt.in))
		})
	}
}

func TestKeyStringCrossTypeMatch(t *testing.T) {
	// A CSV-sourced key and a JSON-sourced key for the same id must agree.
	assert.Equal(t, KeyString("100"), KeyString(float64(100)))
	assert.Equal(t, KeyString("100"), KeyString(100))
}

func TestFormatValue(t *testing.T) {
	d, err := time.Parse(DateLayout, "15-03-2024")
	require.NoError(t, err)

	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "250.0", FormatValue("250.0"))
	assert.Equal(t, "4.2", FormatValue(4.2))
	assert.Equal(t, "7", FormatValue(7))
	assert.Equal(t, "15-03-2024", FormatValue(d))
}

func TestWriteCSV(t *testing.T) {
	d, err := time.Parse(DateLayout, "01-10-2024")
	require.NoError(t, err)

	tbl := New("out", "id", "when", "note")
	tbl.Append(Row{"id": 1, "when": d, "note": "first"})
	tbl.Append(Row{"id": 2, "when": d})

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))

	want := "id,when,note\n1,01-10-2024,first\n2,01-10-2024,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVDeterministic(t *testing.T) {
	tbl := New("out", "x", "y")
	tbl.Append(Row{"x": "a", "y": "b"})

	var first, second bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&first))
	require.NoError(t, tbl.WriteCSV(&second))
	assert.Equal(t, first.Bytes(), second.Bytes())
}
