package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the source and output paths for one merge run.
type Config struct {
	OrdersPath      string `yaml:"orders"`
	UsersPath       string `yaml:"users"`
	RestaurantsPath string `yaml:"restaurants"`
	OutputPath      string `yaml:"output"`
}

// Default returns working-directory defaults for all paths.
func Default() Config {
	return Config{
		OrdersPath:      "orders.csv",
		UsersPath:       "users.json",
		RestaurantsPath: "restaurants.sql",
		OutputPath:      "enriched_orders.csv",
	}
}

// Load builds a Config from defaults, an optional YAML file, and
// environment overrides, in that precedence order. An empty path skips
// the file step.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.OrdersPath = getEnv("ORDERMERGE_ORDERS", cfg.OrdersPath)
	cfg.UsersPath = getEnv("ORDERMERGE_USERS", cfg.UsersPath)
	cfg.RestaurantsPath = getEnv("ORDERMERGE_RESTAURANTS", cfg.RestaurantsPath)
	cfg.OutputPath = getEnv("ORDERMERGE_OUTPUT", cfg.OutputPath)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
