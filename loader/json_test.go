package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	path := writeFile(t, "users.json", `[
		{"user_id": 10, "name": "Asha", "city": "Pune", "membership": "Gold"},
		{"user_id": 11, "name": "Rahul", "city": "Mumbai", "membership": "Regular"}
	]`)

	tbl, err := JSON(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"user_id", "name", "city", "membership"}, tbl.Columns)
	require.Equal(t, 2, tbl.NumRows())

	// JSON numbers become float64
	assert.Equal(t, float64(10), tbl.Rows[0]["user_id"])
	assert.Equal(t, "Asha", tbl.Rows[0]["name"])
	assert.Equal(t, "Regular", tbl.Rows[1]["membership"])
}

func TestJSONHeterogeneousKeys(t *testing.T) {
	path := writeFile(t, "users.json", `[
		{"user_id": 1, "name": "A"},
		{"user_id": 2, "city": "Delhi"}
	]`)

	tbl, err := JSON(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"user_id", "name", "city"}, tbl.Columns)

	// A key absent from a record is null for that row, not an error.
	_, ok := tbl.Rows[0]["city"]
	assert.False(t, ok)
	_, ok = tbl.Rows[1]["name"]
	assert.False(t, ok)
}

func TestJSONNestedValueIsAnError(t *testing.T) {
	path := writeFile(t, "users.json", `[
		{"user_id": 1, "address": {"city": "Pune"}}
	]`)

	_, err := JSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flat")
}

func TestJSONNestedArrayIsAnError(t *testing.T) {
	path := writeFile(t, "users.json", `[{"user_id": 1, "tags": ["a"]}]`)
	_, err := JSON(path)
	assert.Error(t, err)
}

func TestJSONTopLevelMustBeArray(t *testing.T) {
	path := writeFile(t, "users.json", `{"user_id": 1}`)
	_, err := JSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array")
}

func TestJSONEmptyArray(t *testing.T) {
	path := writeFile(t, "users.json", `[]`)
	tbl, err := JSON(path)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Empty(t, tbl.Columns)
}
