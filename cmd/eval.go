package cmd

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rail44/abacus/calc"
	"github.com/rail44/abacus/internal/expr"
	"github.com/rail44/abacus/internal/log"
	"github.com/rail44/abacus/internal/worksheet"
)

var evalFile string

var evalCmd = &cobra.Command{
	Use:   "eval [expression]...",
	Short: "Evaluate calculator expressions",
	Long: `Evaluate one or more expressions and print one result per line.

Expressions support the four arithmetic operators, parentheses, unary
minus, and discount(price, percent). With --file, every line of the
worksheet is evaluated instead.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Error("failed to load configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}
		setupLogging(cfg)

		calculator := calc.NewWithPrecision(cfg.Precision)
		evaluator := expr.New(calculator)
		format := formatter(calculator, cfg)

		if evalFile != "" {
			if len(args) > 0 {
				log.Error("cannot combine --file with expression arguments")
				os.Exit(1)
			}
			runWorksheet(evaluator, format)
			return
		}

		if len(args) == 0 {
			cmd.Help()
			os.Exit(1)
		}

		for _, arg := range args {
			v, err := evaluator.Eval(arg)
			if err != nil {
				log.Error("evaluation failed", slog.String("expression", arg), slog.String("error", err.Error()))
				os.Exit(1)
			}
			fmt.Println(format(v))
		}
	},
}

func runWorksheet(evaluator *expr.Evaluator, format func(float64) string) {
	result, err := worksheet.EvaluateFile(evaluator, evalFile)
	if err != nil {
		log.Error("failed to evaluate worksheet", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, line := range result.Lines {
		if line.Err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %s: %v\n", result.Path, line.Num, line.Source, line.Err)
			continue
		}
		fmt.Printf("%s = %s\n", line.Source, format(line.Value))
	}

	if result.Failed() {
		os.Exit(1)
	}
}

func init() {
	evalCmd.Flags().StringVarP(&evalFile, "file", "f", "", "evaluate a worksheet file instead of arguments")
	rootCmd.AddCommand(evalCmd)
}
