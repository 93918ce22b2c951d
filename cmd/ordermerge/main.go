package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ordermerge/config"
	"ordermerge/pipeline"
)

const version = "1.0.0"

var (
	verbose    bool
	configPath string

	ordersPath      string
	usersPath       string
	restaurantsPath string
	outputPath      string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ordermerge",
	Short: "Merge order, user and restaurant datasets into one flat table",
	Long: `ordermerge merges three small datasets - an orders CSV, a users JSON
array, and restaurant rows embedded in SQL INSERT text - into a single
enriched orders table via two left joins, then derives calendar columns
(month, year, quarter) from each order date.

The run is a single forward pass: it either writes the full output file
or fails without writing anything.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if ordersPath != "" {
			cfg.OrdersPath = ordersPath
		}
		if usersPath != "" {
			cfg.UsersPath = usersPath
		}
		if restaurantsPath != "" {
			cfg.RestaurantsPath = restaurantsPath
		}
		if outputPath != "" {
			cfg.OutputPath = outputPath
		}

		rows, err := pipeline.Run(cfg, logger)
		if err != nil {
			return err
		}

		fmt.Printf("wrote %d enriched orders to %s\n", rows, cfg.OutputPath)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ordermerge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ordermerge %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&ordersPath, "orders", "", "path to the orders CSV (overrides config)")
	rootCmd.Flags().StringVar(&usersPath, "users", "", "path to the users JSON (overrides config)")
	rootCmd.Flags().StringVar(&restaurantsPath, "restaurants", "", "path to the restaurants SQL text (overrides config)")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "path for the enriched orders CSV (overrides config)")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
