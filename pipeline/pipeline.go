package pipeline

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"ordermerge/config"
	"ordermerge/extract"
	"ordermerge/join"
	"ordermerge/loader"
	"ordermerge/table"
)

// OutputColumns is the column layout of the enriched orders artifact.
// The two restaurant name columns are kept distinct on purpose: the
// order-side value is a snapshot taken at order time, the master value is
// the restaurant's current name, and they can diverge.
var OutputColumns = []string{
	"order_id",
	"order_date",
	"user_id",
	"name",
	"city",
	"membership",
	"restaurant_id",
	"restaurant_name_from_order",
	"restaurant_name_master",
	"cuisine",
	"rating",
	"total_amount",
	"order_month",
	"order_year",
	"order_quarter",
}

// Run executes the whole merge as one forward pass: load orders, load
// users, extract restaurants, left-join users then restaurants onto the
// orders, derive the calendar columns, and write the result.
//
// Stages run strictly in sequence and the run is all-or-nothing: the
// first failing stage aborts the run and no output file is written. On
// success Run returns the output row count, which always equals the order
// row count when the right-side keys are unique.
func Run(cfg config.Config, logger *zap.Logger) (int, error) {
	orders, err := loader.CSV(cfg.OrdersPath)
	if err != nil {
		return 0, fmt.Errorf("load orders: %w", err)
	}
	logger.Info("loaded orders",
		zap.String("path", cfg.OrdersPath),
		zap.Int("rows", orders.NumRows()))

	users, err := loader.JSON(cfg.UsersPath)
	if err != nil {
		return 0, fmt.Errorf("load users: %w", err)
	}
	logger.Info("loaded users",
		zap.String("path", cfg.UsersPath),
		zap.Int("rows", users.NumRows()))

	restaurants, err := extract.File(cfg.RestaurantsPath)
	if err != nil {
		return 0, fmt.Errorf("extract restaurants: %w", err)
	}
	logger.Info("extracted restaurants",
		zap.String("path", cfg.RestaurantsPath),
		zap.Int("rows", restaurants.NumRows()))

	enriched, err := join.Left(orders, users, "user_id", join.Options{})
	if err != nil {
		return 0, fmt.Errorf("join users: %w", err)
	}

	enriched, err = join.Left(enriched, restaurants, "restaurant_id", join.Options{
		LeftSuffix:  "_from_order",
		RightSuffix: "_master",
	})
	if err != nil {
		return 0, fmt.Errorf("join restaurants: %w", err)
	}

	if err := join.DeriveCalendar(enriched, loader.OrderDateColumn); err != nil {
		return 0, fmt.Errorf("derive calendar columns: %w", err)
	}

	out, err := enriched.Project(OutputColumns...)
	if err != nil {
		return 0, fmt.Errorf("project output columns: %w", err)
	}

	if err := write(out, cfg.OutputPath); err != nil {
		return 0, err
	}
	logger.Info("wrote enriched orders",
		zap.String("path", cfg.OutputPath),
		zap.Int("rows", out.NumRows()))

	return out.NumRows(), nil
}

// write creates the output file only after the table is fully built, so a
// failed run leaves no partial artifact behind.
func write(t *table.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
