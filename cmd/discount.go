package cmd

import (
	"fmt"
	"os"
	"strconv"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rail44/abacus/calc"
	"github.com/rail44/abacus/internal/log"
)

var discountCmd = &cobra.Command{
	Use:   "discount <price> <percent>",
	Short: "Apply a discount percentage to a price",
	Long: `Apply a discount percentage to a price and print the result.

Inputs are not validated: a percentage above 100 yields a negative
price and a negative percentage acts as a surcharge.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Error("failed to load configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}
		setupLogging(cfg)

		price, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			log.Error("invalid price", slog.String("value", args[0]))
			os.Exit(1)
		}
		percent, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			log.Error("invalid percent", slog.String("value", args[1]))
			os.Exit(1)
		}

		calculator := calc.NewWithPrecision(cfg.Precision)
		format := formatter(calculator, cfg)
		fmt.Println(format(calc.ApplyDiscount(price, percent)))
	},
}

func init() {
	rootCmd.AddCommand(discountCmd)
}
