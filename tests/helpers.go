package tests

import (
	"os"
	"path/filepath"
	"testing"

	"ordermerge/config"
)

// FixtureConfig copies the testdata source files into a temporary
// directory and returns a Config pointing at them, with the output path
// inside the same directory.
func FixtureConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Config{
		OrdersPath:      copyFixture(t, "orders.csv", dir),
		UsersPath:       copyFixture(t, "users.json", dir),
		RestaurantsPath: copyFixture(t, "restaurants.sql", dir),
		OutputPath:      filepath.Join(dir, "enriched_orders.csv"),
	}
	return cfg
}

// GoldenOutput returns the expected enriched orders artifact for the
// testdata fixtures, byte for byte.
func GoldenOutput(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "enriched_orders_golden.csv"))
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	return data
}

func copyFixture(t *testing.T, name, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, data, 0644); err != nil {
		t.Fatalf("failed to copy fixture %s: %v", name, err)
	}
	return dst
}
