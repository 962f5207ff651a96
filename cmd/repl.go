package cmd

import (
	"fmt"
	"os"

	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rail44/abacus/calc"
	"github.com/rail44/abacus/internal/expr"
	"github.com/rail44/abacus/internal/log"
	"github.com/rail44/abacus/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive calculator prompt",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Error("failed to load configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}
		setupLogging(cfg)

		calculator := calc.NewWithPrecision(cfg.Precision)
		evaluator := expr.New(calculator)

		m := repl.New(evaluator, formatter(calculator, cfg))
		if _, err := tea.NewProgram(m).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
