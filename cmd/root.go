package cmd

import (
	"fmt"
	"os"
	"strconv"

	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rail44/abacus/calc"
	"github.com/rail44/abacus/internal/config"
	"github.com/rail44/abacus/internal/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "Command-line calculator with worksheets",
	Long: `Abacus is a command-line calculator built on a small arithmetic
library. It evaluates expressions directly, applies discounts, watches
worksheet files for changes, and offers an interactive prompt.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file or directory (default searches upward for abacus.toml)")
	rootCmd.PersistentFlags().Int("precision", calc.DefaultPrecision, "decimal places for rounded display")
	rootCmd.PersistentFlags().Bool("round", false, "round displayed results to the configured precision")
	rootCmd.PersistentFlags().String("log-level", "", "log level (error, warn, info, debug)")

	viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
	viper.BindPFlag("round", rootCmd.PersistentFlags().Lookup("round"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// loadConfig loads abacus.toml and overlays any flags set on the command line.
func loadConfig() (*config.Config, error) {
	start := "."
	if cfgFile != "" {
		start = cfgFile
	}

	cfg, err := config.Load(start)
	if err != nil {
		return nil, err
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("precision") {
		cfg.Precision = viper.GetInt("precision")
	}
	if flags.Changed("round") {
		cfg.Round = viper.GetBool("round")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = viper.GetString("log_level")
	}

	if cfg.Precision < 0 {
		return nil, fmt.Errorf("precision must be non-negative, got %d", cfg.Precision)
	}

	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Error("invalid log level", slog.String("level", logLevel))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// formatter builds the display function for results. Rounding only ever
// happens here; computed values stay exact.
func formatter(c *calc.Calculator, cfg *config.Config) func(float64) string {
	return func(v float64) string {
		if cfg.Round {
			return strconv.FormatFloat(c.Round(v), 'f', c.Precision(), 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
