package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rail44/abacus/calc"
	"github.com/rail44/abacus/internal/expr"
	"github.com/rail44/abacus/internal/interactive"
	"github.com/rail44/abacus/internal/log"
)

var watchCmd = &cobra.Command{
	Use:   "watch <worksheet>",
	Short: "Watch a worksheet file and re-evaluate it on every save",
	Long: `Watch monitors a worksheet file and re-evaluates every expression
whenever the file is saved, showing the results in place.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filePath := args[0]

		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file %s does not exist\n", filePath)
			os.Exit(1)
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to resolve path: %v\n", err)
			os.Exit(1)
		}

		if err := runWatchMode(absPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatchMode(filePath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogging(cfg)

	calculator := calc.NewWithPrecision(cfg.Precision)
	evaluator := expr.New(calculator)

	m := interactive.NewModel(filePath, evaluator, formatter(calculator, cfg))

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Watcher diagnostics go into the view, not stderr, while the TUI owns
	// the terminal.
	logger := log.NewCallbackLogger(func(record slog.Record) {
		msg := record.Message
		record.Attrs(func(a slog.Attr) bool {
			msg += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
			return true
		})
		p.Send(interactive.LogLine(msg))
	}, log.GetCurrentLevel())

	watcher, err := interactive.NewFileWatcher(filePath, func() {
		p.Send(interactive.FileChanged())
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	// Trigger initial evaluation
	p.Send(interactive.FileChanged())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}

	return nil
}
