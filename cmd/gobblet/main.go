// gobblet serves and replays games of stacking tic-tac-toe.
//
// Usage:
//
//	gobblet serve                 - Start the HTTP server
//	gobblet replay <move>...      - Apply moves to a fresh board and print it
//
// Global flags:
//
//	--config <path>     - yaml config file (env only when empty)
//	--log-level <level> - debug, info, warn or error (overrides config)
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jaminalder/codex-gobblet/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gobblet",
	Short: "Gobblet - stacking tic-tac-toe",
	Long: `Gobblet is tic-tac-toe with three sizes of pieces. A larger piece may
cover a smaller one, and pieces on the board may be moved again.

Move notation:
  2@0,1     place a size 2 piece from the bench on square (0,1)
  0,0>1,1   move the top piece of (0,0) onto (1,1)

Examples:
  gobblet serve --addr :8080
  gobblet replay 3@1,1 3@0,0 1@0,2 --moves`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to yaml config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads config and applies the --log-level override.
func loadConfig() (*config.Config, error) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		if _, err := config.ParseLevel(flagLogLevel); err != nil {
			return nil, err
		}
		conf.LogLevel = flagLogLevel
	}
	return conf, nil
}

// newLogger returns a slog logger backed by a charm log handler.
func newLogger(conf *config.Config) *slog.Logger {
	level, _ := config.ParseLevel(conf.LogLevel)
	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gobblet",
		Level:           log.Level(level),
	})
	return slog.New(handler)
}
